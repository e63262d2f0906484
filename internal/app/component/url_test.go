package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostURL(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "/posts/42-hello-world", PostURL(42, "Hello World"))
	assert.Equal(t, "/posts/42", PostURL(42, "?!"))
}

func TestIndexURL(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{
			name:  "first page",
			token: "",
			want:  "/",
		},
		{
			name:  "with token",
			token: "oQEY",
			want:  "/?page=oQEY",
		},
		{
			name:  "escapes token",
			token: "a b",
			want:  "/?page=a+b",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.want, IndexURL(test.token))
		})
	}
}

func TestGroupField(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "group_7", GroupField(7))

	tests := []struct {
		name   string
		field  string
		want   uint64
		wantOK bool
	}{
		{name: "group field", field: "group_7", want: 7, wantOK: true},
		{name: "round trip", field: GroupField(18446744073709551615), want: 18446744073709551615, wantOK: true},
		{name: "prefix only", field: "group_", wantOK: false},
		{name: "not a number", field: "group_abc", wantOK: false},
		{name: "other field", field: "username", wantOK: false},
		{name: "negative", field: "group_-1", wantOK: false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			id, ok := GroupIDFromField(test.field)
			assert.Equal(t, test.wantOK, ok)
			if test.wantOK {
				assert.Equal(t, test.want, id)
			}
		})
	}
}
