package cli

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestParseInvocation(t *testing.T) {
	testCases := []struct {
		description string
		args        []string
		expect      func(t *testing.T, inv *Invocation)
		expectErr   bool
	}{
		{
			description: "run with config",
			args:        []string{"run", "-config", "requirements.csv"},
			expect: func(t *testing.T, inv *Invocation) {
				assert.Equal(t, CommandRun, inv.Command)
				assert.Equal(t, "requirements.csv", inv.ConfigURL)
				assert.Equal(t, ".env", inv.EnvFile)
				assert.Nil(t, inv.OutputURL)
				assert.Nil(t, inv.Seed)
				assert.Nil(t, inv.Trace)
			},
		},
		{
			description: "double dash flags",
			args:        []string{"run", "--config", "r.yaml", "--out", "mem://localhost/out", "--seed", "7", "--trace", "--metrics", ":2112"},
			expect: func(t *testing.T, inv *Invocation) {
				assert.Equal(t, "r.yaml", inv.ConfigURL)
				if assert.NotNil(t, inv.OutputURL) {
					assert.Equal(t, "mem://localhost/out", *inv.OutputURL)
				}
				if assert.NotNil(t, inv.Seed) {
					assert.EqualValues(t, 7, *inv.Seed)
				}
				if assert.NotNil(t, inv.Trace) {
					assert.True(t, *inv.Trace)
				}
				if assert.NotNil(t, inv.MetricsAddr) {
					assert.Equal(t, ":2112", *inv.MetricsAddr)
				}
			},
		},
		{
			description: "clean",
			args:        []string{"clean"},
			expect: func(t *testing.T, inv *Invocation) {
				assert.Equal(t, CommandClean, inv.Command)
			},
		},
		{description: "no command", args: nil, expectErr: true},
		{description: "unknown command", args: []string{"generate"}, expectErr: true},
		{description: "run without config", args: []string{"run"}, expectErr: true},
		{description: "clean rejects config", args: []string{"clean", "-config", "x.csv"}, expectErr: true},
		{description: "positional", args: []string{"run", "-config", "x.csv", "extra"}, expectErr: true},
		{description: "empty out", args: []string{"clean", "-out", ""}, expectErr: true},
		{description: "bad seed", args: []string{"run", "-config", "x.csv", "-seed", "abc"}, expectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			inv, err := ParseInvocation(tc.args)
			if tc.expectErr {
				var invErr *InvocationError
				if assert.True(t, errors.As(err, &invErr)) {
					assert.Equal(t, ExitInvalidInvocation, invErr.ExitCode)
					assert.Contains(t, invErr.Message, "Usage:")
				}
				return
			}
			assert.NoError(t, err)
			tc.expect(t, inv)
		})
	}
}
