package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/rbmap/rbtree"
)

type nodeids[K, V any] struct {
	idTable map[*rbtree.Node[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*rbtree.Node[K, V]]int),
		max:     1,
	}
}

func (ids *nodeids[K, V]) alloc(node *rbtree.Node[K, V]) int {
	if id := ids.idTable[node]; id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Absent children are drawn as small black boxes.
func Dot[K, V any](tree *rbtree.Tree[K, V], w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := newtable[K, V]()
	nilcount := 0
	var nilNode = func(parent int) {
		nilcount++
		nilid := fmt.Sprintf("nil%d", nilcount)
		fmt.Fprintf(&nodelist, "\"%s\" %s;\n", nilid, emptyNode())
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%s\";\n", parent, nilid)
	}
	tree.ForEach(func(n *rbtree.Node[K, V]) bool {
		ID := ids.alloc(n)
		label := fmt.Sprintf("%v\\n%v", n.Key(), n.Value())
		label = strings.ReplaceAll(label, "\"", "\\\"")
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\"%s];\n", ID, label, nodeDotStyles(n.Color()))
		for _, child := range []*rbtree.Node[K, V]{n.Left(), n.Right()} {
			if child == nil {
				nilNode(ID)
			} else {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			}
		}
		return true
	})
	var out strings.Builder
	out.WriteString("strict digraph {\n")
	out.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	out.WriteString(nodelist.String())
	out.WriteString(edgelist.String())
	out.WriteString("}\n")
	_, err := io.WriteString(w, out.String())
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",style=filled,fillcolor=black,shape=box,fixedsize=true,width=.2,height=.15]"
}

func nodeDotStyles(c rbtree.Color) string {
	s := ",style=filled,shape=circle,fontcolor=white"
	if c == rbtree.Red {
		s += ",color=\"#cc0000\",fillcolor=\"#ee2222\""
	} else {
		s += ",color=black,fillcolor=\"#222222\""
	}
	return s
}
