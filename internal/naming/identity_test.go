package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentity(t *testing.T) {
	testCases := []struct {
		name        string
		nodeName    string
		namespace   string
		opts        []IdentityOption
		expectedNS  string
		expectedFQN string
		expectErr   error
	}{
		{
			name:        "absolute namespace",
			nodeName:    "my_node",
			namespace:   "/ns",
			expectedNS:  "/ns",
			expectedFQN: "/ns/my_node",
		},
		{
			name:        "relative namespace is normalized",
			nodeName:    "my_node",
			namespace:   "ns",
			expectedNS:  "/ns",
			expectedFQN: "/ns/my_node",
		},
		{
			name:        "empty namespace defaults to root",
			nodeName:    "my_node",
			namespace:   "",
			expectedNS:  "/",
			expectedFQN: "/my_node",
		},
		{
			name:        "multi segment namespace",
			nodeName:    "my_node",
			namespace:   "/my/ns",
			expectedNS:  "/my/ns",
			expectedFQN: "/my/ns/my_node",
		},
		{
			name:        "relative multi segment namespace",
			nodeName:    "my_node",
			namespace:   "my/ns",
			expectedNS:  "/my/ns",
			expectedFQN: "/my/ns/my_node",
		},
		{
			name:        "override supersedes namespace",
			nodeName:    "my_node",
			namespace:   "ns",
			opts:        []IdentityOption{WithNamespaceOverride("/another_ns")},
			expectedNS:  "/another_ns",
			expectedFQN: "/another_ns/my_node",
		},
		{
			name:        "empty override behaves like empty namespace",
			nodeName:    "my_node",
			namespace:   "/ns",
			opts:        []IdentityOption{WithNamespaceOverride("")},
			expectedNS:  "/",
			expectedFQN: "/my_node",
		},
		{
			name:      "error - invalid name",
			nodeName:  "invalid_node?",
			namespace: "/ns",
			expectErr: ErrInvalidNodeName,
		},
		{
			name:      "error - invalid namespace",
			nodeName:  "my_node",
			namespace: "/invalid_ns?",
			expectErr: ErrInvalidNamespace,
		},
		{
			name:      "error - trailing separator",
			nodeName:  "my_node",
			namespace: "ns/",
			expectErr: ErrInvalidNamespace,
		},
		{
			name:      "error - name checked before namespace",
			nodeName:  "invalid_node?",
			namespace: "also//invalid/",
			expectErr: ErrInvalidNodeName,
		},
		{
			name:      "error - invalid override",
			nodeName:  "my_node",
			namespace: "/ns",
			opts:      []IdentityOption{WithNamespaceOverride("/bad ns")},
			expectErr: ErrInvalidNamespace,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := NewIdentity(tc.nodeName, tc.namespace, tc.opts...)

			if tc.expectErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectErr)
				assert.ErrorIs(t, err, ErrNameValidation)
				assert.Nil(t, id)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, id)
			assert.Equal(t, tc.nodeName, id.Name())
			assert.Equal(t, tc.expectedNS, id.Namespace())
			assert.Equal(t, tc.expectedFQN, id.FullyQualifiedName())
			assert.Equal(t, tc.expectedFQN, id.String())
		})
	}
}

func TestIdentity_LoggerName(t *testing.T) {
	testCases := []struct {
		nodeName  string
		namespace string
		expected  string
	}{
		{nodeName: "my_node", namespace: "", expected: "my_node"},
		{nodeName: "my_node", namespace: "/ns", expected: "ns.my_node"},
		{nodeName: "my_node", namespace: "ns", expected: "ns.my_node"},
		{nodeName: "my_node", namespace: "/my/ns", expected: "my.ns.my_node"},
		{nodeName: "my_node", namespace: "my/ns", expected: "my.ns.my_node"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			id, err := NewIdentity(tc.nodeName, tc.namespace)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, id.LoggerName())
		})
	}
}
