package main

import "testing"

func TestRunCLIArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"help long", []string{"--help"}, false},
		{"help short", []string{"-h"}, false},
		{"help word", []string{"help"}, false},
		{"version long", []string{"--version"}, false},
		{"version short", []string{"-v"}, false},
		{"unknown command", []string{"frobnicate"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runCLI(tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("runCLI(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
		})
	}
}
