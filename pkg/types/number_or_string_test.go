package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumberOrString_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expected    *NumberOrString
		expectedErr bool
	}{
		{name: "number", input: `{"v":643}`, expected: ptr(NumberOrString("643"))},
		{name: "small number", input: `{"v":4}`, expected: ptr(NumberOrString("4"))},
		{name: "padded string", input: `{"v":"004"}`, expected: ptr(NumberOrString("004"))},
		{name: "negative number", input: `{"v":-1}`, expected: ptr(NumberOrString("-1"))},
		{name: "fraction", input: `{"v":1.5}`, expected: ptr(NumberOrString("1.5"))},
		{name: "null", input: `{"v":null}`, expected: nil},
		{name: "absent", input: `{}`, expected: nil},
		{name: "bool", input: `{"v":true}`, expectedErr: true},
		{name: "object", input: `{"v":{}}`, expectedErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var dst struct {
				V *NumberOrString `json:"v"`
			}

			err := json.Unmarshal([]byte(tc.input), &dst)
			if tc.expectedErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expected, dst.V)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
