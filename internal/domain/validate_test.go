package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		wantErr bool
	}{
		{"valid hostname", Profile{Nickname: "makefolder", Host: "irc.libera.chat", Port: 6697}, false},
		{"valid ip", Profile{Nickname: "nick_1", Host: "127.0.0.1", Port: 6667}, false},
		{"special first char", Profile{Nickname: "[bot]", Host: "localhost", Port: 6667}, false},
		{"digit first char", Profile{Nickname: "1nick", Host: "localhost", Port: 6667}, true},
		{"space in nick", Profile{Nickname: "a b", Host: "localhost", Port: 6667}, true},
		{"empty nick", Profile{Host: "localhost", Port: 6667}, true},
		{"nick too long", Profile{Nickname: "abcdefghijklmnopqrstuvwxyzabcdefg", Host: "localhost", Port: 6667}, true},
		{"bad host", Profile{Nickname: "nick", Host: "not a host", Port: 6667}, true},
		{"port zero", Profile{Nickname: "nick", Host: "localhost", Port: 0}, true},
		{"port too big", Profile{Nickname: "nick", Host: "localhost", Port: 70000}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfile(tt.profile)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProfileAddress(t *testing.T) {
	assert.Equal(t, "irc.libera.chat:6697", Profile{Host: "irc.libera.chat", Port: 6697}.Address())
	assert.Equal(t, "[::1]:6667", Profile{Host: "::1", Port: 6667}.Address())
}

func TestProfileErrors(t *testing.T) {
	assert.True(t, IsNoProfileError(NoProfileError{}))
	assert.False(t, IsNoProfileError(AmbiguousProfileError{}))
	assert.Equal(t, "no saved profiles found", NoProfileError{}.Error())
	assert.Equal(t, `no profile matches "ab"`, NoProfileError{Query: "ab"}.Error())
	assert.Equal(t, `2 profiles match "a", use a longer prefix`, AmbiguousProfileError{Query: "a", Matches: 2}.Error())
}

func TestValidatorRegistersNickname(t *testing.T) {
	v := Validator()
	assert.Same(t, v, Validator())
	assert.NoError(t, v.Var("alice", "nickname"))
	assert.Error(t, v.Var("1alice", "nickname"))
}
