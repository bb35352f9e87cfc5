package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"checkout3d/internal/mathx"
)

// Node is a named transform in the scene tree: position, Euler XYZ rotation
// (radians) and scale, with a single parent owning its children.
type Node struct {
	Name     string
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Scale    mgl64.Vec3

	parent   *Node
	children []*Node
}

// NewNode returns a node at the origin with unit scale.
func NewNode(name string) *Node {
	return &Node{Name: name, Scale: mgl64.Vec3{1, 1, 1}}
}

// AddChild attaches c under n, detaching it from any previous parent.
func (n *Node) AddChild(c *Node) {
	if c == nil || c == n {
		return
	}
	if c.parent != nil {
		c.parent.removeChild(c)
	}
	c.parent = n
	n.children = append(n.children, c)
}

func (n *Node) removeChild(c *Node) {
	for i, ch := range n.children {
		if ch == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return
		}
	}
}

// Parent returns the owning node, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the directly owned nodes.
func (n *Node) Children() []*Node { return n.children }

// LocalMatrix composes translate·rotate·scale for this node alone.
func (n *Node) LocalMatrix() mgl64.Mat4 {
	t := mgl64.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z())
	r := mgl64.AnglesToQuat(n.Rotation.X(), n.Rotation.Y(), n.Rotation.Z(), mgl64.XYZ).Mat4()
	s := mgl64.Scale3D(n.Scale.X(), n.Scale.Y(), n.Scale.Z())
	return t.Mul4(r).Mul4(s)
}

// WorldMatrix composes the transforms from the root down to this node.
func (n *Node) WorldMatrix() mgl64.Mat4 {
	if n.parent == nil {
		return n.LocalMatrix()
	}
	return n.parent.WorldMatrix().Mul4(n.LocalMatrix())
}

// WorldPosition returns the node origin in world space.
func (n *Node) WorldPosition() mgl64.Vec3 {
	return n.WorldMatrix().Mul4x1(mgl64.Vec4{0, 0, 0, 1}).Vec3()
}

// Orientation resolves the node's Y rotation into the front/back facing.
func (n *Node) Orientation() mathx.Orientation {
	return mathx.OrientationOf(n.Rotation.Y())
}
