package sec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCredentials() Credentials {
	return Credentials{
		Username:  "jdoe",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "Secr3t-pass",
	}
}

func TestValidateCredentials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Credentials)
		want   error
	}{
		{
			name:   "valid",
			modify: func(*Credentials) {},
			want:   nil,
		},
		{
			name:   "missing username",
			modify: func(c *Credentials) { c.Username = "" },
			want:   ErrUsernameRequired,
		},
		{
			name:   "missing username reported before other fields",
			modify: func(c *Credentials) { *c = Credentials{} },
			want:   ErrUsernameRequired,
		},
		{
			name:   "space in username",
			modify: func(c *Credentials) { c.Username = "j doe" },
			want:   ErrUsernameSpaces,
		},
		{
			name:   "missing first name",
			modify: func(c *Credentials) { c.FirstName = "" },
			want:   ErrFirstNameRequired,
		},
		{
			name:   "missing last name",
			modify: func(c *Credentials) { c.LastName = "" },
			want:   ErrLastNameRequired,
		},
		{
			name:   "missing email",
			modify: func(c *Credentials) { c.Email = "" },
			want:   ErrEmailRequired,
		},
		{
			name:   "missing password",
			modify: func(c *Credentials) { c.Password = "" },
			want:   ErrPasswordRequired,
		},
		{
			name:   "space in password",
			modify: func(c *Credentials) { c.Password = "Secr3t pass" },
			want:   ErrPasswordSpaces,
		},
		{
			name:   "space in short weak password",
			modify: func(c *Credentials) { c.Password = "a b" },
			want:   ErrPasswordSpaces,
		},
		{
			name:   "short password",
			modify: func(c *Credentials) { c.Password = "S3t-p" },
			want:   ErrPasswordLength,
		},
		{
			name:   "length counts characters not bytes",
			modify: func(c *Credentials) { c.Password = "Ä1-äääää" },
			want:   ErrPasswordWeak,
		},
		{
			name:   "no uppercase",
			modify: func(c *Credentials) { c.Password = "secr3t-pass" },
			want:   ErrPasswordWeak,
		},
		{
			name:   "no lowercase",
			modify: func(c *Credentials) { c.Password = "SECR3T-PASS" },
			want:   ErrPasswordWeak,
		},
		{
			name:   "no digit",
			modify: func(c *Credentials) { c.Password = "Secret-pass" },
			want:   ErrPasswordWeak,
		},
		{
			name:   "no special character",
			modify: func(c *Credentials) { c.Password = "Secr3tpass" },
			want:   ErrPasswordWeak,
		},
		{
			name:   "line break",
			modify: func(c *Credentials) { c.Password = "Secr3t-pass\n" },
			want:   ErrPasswordWeak,
		},
		{
			name:   "exactly eight characters",
			modify: func(c *Credentials) { c.Password = "aB3$efgh" },
			want:   nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			creds := validCredentials()
			test.modify(&creds)
			err := ValidateCredentials(creds)
			if test.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, test.want)
			var verr ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestValidatePassword_ShortAlwaysRejected(t *testing.T) {
	t.Parallel()

	for n := 1; n < MinPasswordLen; n++ {
		for _, base := range []string{"a", "A", "1", "$", "aB3$"} {
			password := strings.Repeat(base, n)[:n]
			assert.Equal(t, ErrPasswordLength, ValidatePassword(password), "password %q", password)
		}
	}
}

func TestValidatePassword_SpecialCharacters(t *testing.T) {
	t.Parallel()

	for _, r := range specialChars {
		password := "Abcdef1" + string(r)
		assert.NoError(t, ValidatePassword(password), "password %q", password)
	}
}
