// Package node provides the runtime facade over a validated naming identity.
// A Node owns its immutable identity, a structured logger carrying the
// node's dotted logger name, a per-instance UID, and a clock collaborator.
package node

import (
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/vk/meshgridgo/internal/naming"
)

// Node is a single addressable entity in the mesh.
type Node struct {
	id     *naming.Identity
	uid    uuid.UUID
	logger *slog.Logger
	clk    clock.Clock
}

// Option configures node construction.
type Option func(*options)

type options struct {
	identityOpts []naming.IdentityOption
	clk          clock.Clock
	logger       *slog.Logger
}

// WithNamespaceOverride supplies an externally remapped namespace that
// supersedes the namespace argument entirely.
func WithNamespaceOverride(ns string) Option {
	return func(o *options) {
		o.identityOpts = append(o.identityOpts, naming.WithNamespaceOverride(ns))
	}
}

// WithClock injects the time source. Defaults to the real clock.
func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clk = c }
}

// WithLogger sets the base logger the node derives its named logger from.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New validates the raw name and namespace and returns a running node
// facade. All validation happens here; the node is immutable afterwards.
func New(name, namespace string, opts ...Option) (*Node, error) {
	o := options{
		clk:    clock.New(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	id, err := naming.NewIdentity(name, namespace, o.identityOpts...)
	if err != nil {
		return nil, err
	}

	uid := uuid.New()
	return &Node{
		id:     id,
		uid:    uid,
		logger: o.logger.With("logger", id.LoggerName(), "uid", uid.String()),
		clk:    o.clk,
	}, nil
}

// Identity returns the node's immutable identity.
func (n *Node) Identity() *naming.Identity { return n.id }

// UID returns the per-instance identifier distinguishing two incarnations
// that share a name. It is diagnostic only; graph-level uniqueness of names
// belongs to the discovery layer.
func (n *Node) UID() uuid.UUID { return n.uid }

// Logger returns the node's named logger.
func (n *Node) Logger() *slog.Logger { return n.logger }

// Clock returns the node's time source.
func (n *Node) Clock() clock.Clock { return n.clk }

// Now reads the node's clock.
func (n *Node) Now() time.Time { return n.clk.Now() }

// Name returns the node's local name.
func (n *Node) Name() string { return n.id.Name() }

// Namespace returns the node's canonical namespace.
func (n *Node) Namespace() string { return n.id.Namespace() }

// FullyQualifiedName returns the node's graph-global address.
func (n *Node) FullyQualifiedName() string { return n.id.FullyQualifiedName() }

// CreateSubNode scopes auxiliary resources under this node by extending it
// with a relative sub-namespace. The sub-node is not a separate graph
// entity: it shares this node's name, namespace, FQN, UID, logger and clock.
func (n *Node) CreateSubNode(segment string) (*SubNode, error) {
	sub, err := n.id.Sub(segment)
	if err != nil {
		return nil, err
	}
	return &SubNode{owner: n, sub: sub}, nil
}

// SubNode is a node view whose owned resources resolve against an effective
// namespace extended by a sub-namespace.
type SubNode struct {
	owner *Node
	sub   *naming.SubIdentity
}

// SubIdentity returns the composed identity backing this view.
func (s *SubNode) SubIdentity() *naming.SubIdentity { return s.sub }

// UID returns the owning node's instance identifier.
func (s *SubNode) UID() uuid.UUID { return s.owner.uid }

// Logger returns the owning node's named logger.
func (s *SubNode) Logger() *slog.Logger { return s.owner.logger }

// Clock returns the owning node's time source.
func (s *SubNode) Clock() clock.Clock { return s.owner.clk }

// Now reads the owning node's clock.
func (s *SubNode) Now() time.Time { return s.owner.clk.Now() }

// Name returns the owning node's local name.
func (s *SubNode) Name() string { return s.sub.Name() }

// Namespace returns the owning node's canonical namespace.
func (s *SubNode) Namespace() string { return s.sub.Namespace() }

// FullyQualifiedName returns the owning node's graph-global address.
func (s *SubNode) FullyQualifiedName() string { return s.sub.FullyQualifiedName() }

// SubNamespace returns the accumulated relative sub-namespace.
func (s *SubNode) SubNamespace() string { return s.sub.SubNamespace() }

// EffectiveNamespace returns the namespace seen by resources owned through
// this view.
func (s *SubNode) EffectiveNamespace() string { return s.sub.EffectiveNamespace() }

// CreateSubNode extends the sub-namespace one level deeper.
func (s *SubNode) CreateSubNode(segment string) (*SubNode, error) {
	sub, err := s.sub.Sub(segment)
	if err != nil {
		return nil, err
	}
	return &SubNode{owner: s.owner, sub: sub}, nil
}
