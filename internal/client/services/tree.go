package services

import "github.com/dmitrijs2005/vidhub/internal/client/models"

const (
	// MaxDepth is the deepest level that still offers to expand replies.
	MaxDepth = 5
	// IndentUnits is the indentation per nesting level.
	IndentUnits = 24
)

// CommentNode is one comment placed in the rendered tree.
type CommentNode struct {
	Comment    models.Comment
	Depth      int
	Indent     int
	Expandable bool
	Composing  bool
	Draft      string
	Replies    *ReplyGroup
	Children   []*CommentNode
}

// Tree snapshots the thread as a recursive structure. Children are present
// only under open reply groups.
func (t *Thread) Tree() []*CommentNode {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buildNodes(t.comments, 0)
}

func (t *Thread) buildNodes(list []models.Comment, depth int) []*CommentNode {
	nodes := make([]*CommentNode, 0, len(list))
	for _, c := range list {
		n := &CommentNode{
			Comment:    c,
			Depth:      depth,
			Indent:     depth * IndentUnits,
			Expandable: Expandable(c.Replies, depth),
		}
		if t.target == c.ID {
			n.Composing = true
			n.Draft = t.draft
		}
		if g, ok := t.groups[c.ID]; ok {
			cp := *g
			cp.Comments = nil
			n.Replies = &cp
			if g.Open && depth < MaxDepth {
				n.Children = t.buildNodes(g.Comments, depth+1)
			}
		}
		nodes = append(nodes, n)
	}
	return nodes
}
