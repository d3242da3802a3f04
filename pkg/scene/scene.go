// Package scene holds an imported scene: the node hierarchy with rest
// poses, meshes with their morph targets, materials and animations.
package scene

import (
	"github.com/Faultbox/assetcore/pkg/anim"
	"github.com/Faultbox/assetcore/pkg/material"
	"github.com/Faultbox/assetcore/pkg/math"
	"github.com/Faultbox/assetcore/pkg/postprocess"
)

// Node is an element of the scene hierarchy.
type Node struct {
	Name string
	// Rest is the node's local transform when no animation applies.
	Rest     anim.Transform
	Meshes   []int // indices into Scene.Meshes
	Children []*Node
}

// AnimMesh is one vertex-animation variant (morph target) of a mesh.
// Empty attribute slices mean the attribute is not replaced.
type AnimMesh struct {
	Name     string
	Vertices []math.Vec3
	Normals  []math.Vec3
	Weight   float32
}

// Mesh is a piece of geometry with a single material.
type Mesh struct {
	Name          string
	MaterialIndex int
	Vertices      []math.Vec3
	Normals       []math.Vec3
	AnimMeshes    []AnimMesh
}

// Scene is the root of imported data. It is read-only after import.
type Scene struct {
	Root       *Node
	Meshes     []*Mesh
	Materials  []*material.Material
	Animations []*anim.Animation
	// Flags records the post-processing steps applied on import.
	Flags postprocess.Step
}

// Walk visits every node depth-first, parents before children. parent is
// nil for the root. Returning false skips the node's children.
func (s *Scene) Walk(fn func(n, parent *Node) bool) {
	if s.Root == nil {
		return
	}
	walk(s.Root, nil, fn)
}

func walk(n, parent *Node, fn func(n, parent *Node) bool) {
	if !fn(n, parent) {
		return
	}
	for _, c := range n.Children {
		if c != nil {
			walk(c, n, fn)
		}
	}
}

// FindNode returns the first node with the given name in depth-first
// order, or nil.
func (s *Scene) FindNode(name string) *Node {
	var found *Node
	s.Walk(func(n, _ *Node) bool {
		if found != nil {
			return false
		}
		if n.Name == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAnimation returns the first animation with the given name, or nil.
func (s *Scene) FindAnimation(name string) *anim.Animation {
	for _, a := range s.Animations {
		if a != nil && a.Name == name {
			return a
		}
	}
	return nil
}

// NodeCount returns the number of nodes in the hierarchy.
func (s *Scene) NodeCount() int {
	count := 0
	s.Walk(func(_, _ *Node) bool {
		count++
		return true
	})
	return count
}

// Pose maps node names to local transforms.
type Pose map[string]anim.Transform

// RestPose returns every node's rest transform. When names repeat, the
// first node in depth-first order wins.
func (s *Scene) RestPose() Pose {
	pose := make(Pose)
	s.Walk(func(n, _ *Node) bool {
		if _, ok := pose[n.Name]; !ok {
			pose[n.Name] = n.Rest
		}
		return true
	})
	return pose
}

// WorldTransforms composes pose down the hierarchy and returns each
// node's world matrix. Nodes missing from pose use their rest transform.
func (s *Scene) WorldTransforms(pose Pose) map[string]math.Mat4 {
	world := make(map[string]math.Mat4)
	parents := make(map[*Node]math.Mat4)

	s.Walk(func(n, parent *Node) bool {
		local, ok := pose[n.Name]
		if !ok {
			local = n.Rest
		}
		m := local.Matrix()
		if parent != nil {
			m = parents[parent].Mul(m)
		}
		parents[n] = m
		if _, ok := world[n.Name]; !ok {
			world[n.Name] = m
		}
		return true
	})
	return world
}
