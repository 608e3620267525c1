package utils

import (
	"path/filepath"
	"testing"
)

func TestSanitizeUserName(t *testing.T) {
	tests := []struct {
		name string
		user string
		want string
	}{
		{
			name: "plain name",
			user: "anna",
			want: "anna",
		},
		{
			name: "uppercase folded",
			user: "Anna",
			want: "anna",
		},
		{
			name: "spaces and punctuation dropped",
			user: "Anna Maria!",
			want: "annamaria",
		},
		{
			name: "dash and underscore kept",
			user: "big_sister-2",
			want: "big_sister-2",
		},
		{
			name: "accented letters kept",
			user: "Léa",
			want: "léa",
		},
		{
			name: "empty falls back",
			user: "   ",
			want: "user",
		},
		{
			name: "only punctuation falls back",
			user: "!!!",
			want: "user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeUserName(tt.user); got != tt.want {
				t.Errorf("SanitizeUserName(%q) = %q, want %q", tt.user, got, tt.want)
			}
		})
	}
}

func TestResolveStorePath(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		override string
		dataDir  string
		want     string
	}{
		{
			name:     "override wins",
			user:     "anna",
			override: "/tmp/custom.csv",
			dataDir:  "data",
			want:     "/tmp/custom.csv",
		},
		{
			name:    "user file under data dir",
			user:    "Anna",
			dataDir: "data",
			want:    filepath.Join("data", "anna.csv"),
		},
		{
			name:    "no user means shared file",
			dataDir: "data",
			want:    "words.csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveStorePath(tt.user, tt.override, tt.dataDir); got != tt.want {
				t.Errorf("ResolveStorePath() = %q, want %q", got, tt.want)
			}
		})
	}
}
