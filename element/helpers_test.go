// SPDX-License-Identifier: MIT

package element_test

import "github.com/katalvlaran/lvmesh/element"

// node is a minimal element with one connectivity slot, used to exercise the
// shared lifecycle without pulling in a concrete encoding.
type node struct {
	element.Base
	link int

	// releasedWhilePlaced records whether Release ran before Blank.
	releasedWhilePlaced bool
}

func newNode() *node {
	return &node{Base: element.NewBase(), link: element.NoIndex}
}

func (*node) Kind() element.Kind { return element.BMLoop }

func (n *node) Release() {
	n.releasedWhilePlaced = n.Initialized()
	n.link = element.NoIndex
}

func (n *node) Reset() {
	n.Release()
	n.Blank()
}

var _ element.Indexed = (*node)(nil)
