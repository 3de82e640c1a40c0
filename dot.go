// Copyright 2024 The jvozip Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jvozip

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DotString returns the tree as a graphviz digraph, one node per arena
// entry with '0'/'1' edge labels. It is purely diagnostic; nothing in
// compression or decompression depends on it.
func (t *Tree) DotString() string {
	var out strings.Builder
	out.WriteString("digraph G {\n")
	for idx, n := range t.nodes {
		if !n.leaf {
			fmt.Fprintf(&out, "n%d -> n%d [label=\"0\"];\n", idx, n.left)
			fmt.Fprintf(&out, "n%d -> n%d [label=\"1\"];\n", idx, n.right)
		}
		fmt.Fprintf(&out, "n%d [label=\"(n=%d)\\n%s\"];\n", idx, n.count, dotLabel(n))
	}
	out.WriteString("}\n")
	return out.String()
}

func dotLabel(n node) string {
	if !n.leaf {
		return ""
	}
	label := string(rune(n.sym))
	label = strings.ReplaceAll(label, `\`, `\\`)
	label = strings.ReplaceAll(label, `"`, `\"`)
	return label
}

// RenderGraph pipes the dot description of the tree to the external
// graphviz dot tool, writing an svg rendering to filename. It requires
// dot to be installed.
func (t *Tree) RenderGraph(ctx context.Context, filename string) error {
	cmd := exec.CommandContext(ctx, "dot", "-Tsvg", "-o", filename)
	cmd.Stdin = strings.NewReader(t.DotString())
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to run dot: %v: %v", err, string(output))
	}
	return nil
}
