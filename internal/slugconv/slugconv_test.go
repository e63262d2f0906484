package slugconv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "simple title",
			title: "Hello World",
			want:  "hello-world",
		},
		{
			name:  "punctuation collapses",
			title: "What's new?! -- Part 2",
			want:  "what-s-new-part-2",
		},
		{
			name:  "strips accents",
			title: "Crème Brûlée",
			want:  "creme-brulee",
		},
		{
			name:  "trims leading and trailing separators",
			title: "  ...hello...  ",
			want:  "hello",
		},
		{
			name:  "no slug-safe characters",
			title: "!!!",
			want:  "",
		},
		{
			name:  "non-latin script dropped",
			title: "日本語 post",
			want:  "post",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.want, Slugify(test.title))
		})
	}
}

func TestSlugify_Truncates(t *testing.T) {
	t.Parallel()
	title := strings.Repeat("word ", 30)
	got := Slugify(title)
	assert.LessOrEqual(t, len(got), maxSlugLen)
	assert.False(t, strings.HasSuffix(got, "-"))
	assert.True(t, strings.HasPrefix(got, "word-word"))
}

func TestPostSlug(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "42-hello-world", PostSlug(42, "Hello, World!"))
	assert.Equal(t, "42", PostSlug(42, "???"))
}

func TestPostIDFromSlug(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		slug    string
		want    uint64
		wantErr bool
	}{
		{
			name: "canonical slug",
			slug: "42-hello-world",
			want: 42,
		},
		{
			name: "bare id",
			slug: "42",
			want: 42,
		},
		{
			name: "trailing slash",
			slug: "42-hello/",
			want: 42,
		},
		{
			name: "max uint64",
			slug: "18446744073709551615-x",
			want: 18446744073709551615,
		},
		{
			name:    "overflow",
			slug:    "18446744073709551616-x",
			wantErr: true,
		},
		{
			name:    "leading zero",
			slug:    "042-hello",
			wantErr: true,
		},
		{
			name:    "missing id",
			slug:    "hello-world",
			wantErr: true,
		},
		{
			name:    "uppercase title",
			slug:    "42-Hello",
			wantErr: true,
		},
		{
			name:    "empty",
			slug:    "",
			wantErr: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got, err := PostIDFromSlug(test.slug)
			if test.wantErr {
				require.ErrorIs(t, err, ErrInvalidSlug)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestPostSlug_RoundTrip(t *testing.T) {
	t.Parallel()
	slug := PostSlug(7283910, "A Tale of Two Cities")
	id, err := PostIDFromSlug(slug)
	require.NoError(t, err)
	assert.Equal(t, uint64(7283910), id)
}
