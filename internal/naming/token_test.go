package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateToken(t *testing.T) {
	testCases := []struct {
		name      string
		token     string
		expectErr bool
	}{
		{name: "simple name", token: "my_node", expectErr: false},
		{name: "leading underscore", token: "_private", expectErr: false},
		{name: "digits after first char", token: "node42", expectErr: false},
		{name: "single letter", token: "x", expectErr: false},
		{name: "single underscore", token: "_", expectErr: false},
		{name: "mixed case", token: "MyNode", expectErr: false},
		{name: "error - empty", token: "", expectErr: true},
		{name: "error - leading digit", token: "1node", expectErr: true},
		{name: "error - question mark", token: "invalid_node?", expectErr: true},
		{name: "error - separator inside", token: "a/b", expectErr: true},
		{name: "error - whitespace", token: "my node", expectErr: true},
		{name: "error - hyphen", token: "my-node", expectErr: true},
		{name: "error - tilde", token: "~node", expectErr: true},
		{name: "error - unicode letterlike", token: "nœud", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateToken(tc.token)

			if tc.expectErr {
				require.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
