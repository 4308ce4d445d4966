package pascal

//go:generate stringer -type=NodeKind -trimprefix=Node

// NodeKind classifies the type of an AST node.
type NodeKind uint16

// Node kinds mirror a Delphi/Pascal source file's structure, from the
// file root down through unit sections to individual declarations.
const (
	NodeFile NodeKind = iota

	NodeUnit
	NodeProgram
	NodeUses
	NodeModule // a single dotted unit name inside a uses list

	NodeInterface
	NodeImplementation
	NodeInitialization
	NodeFinalization
	NodePrivate
	NodePublic
	NodeProtected
	NodePublished
	NodeVarSection
	NodeConstSection
	NodeTypeSection
	NodeBeginKeyword
	NodeEndKeyword

	NodeIdentifier
	NodeSemicolon
	NodeComment
	NodePreprocessor

	NodeProcedureDeclaration
	NodeFunctionDeclaration

	NodeGenericTpl
	NodeTyperefTpl
	NodeExprTpl
	NodeExprUnary
	NodeExprBinary
	NodeAssignment
	NodeDefaultValue
	NodeDeclType

	NodeInheritedStatement

	// NodeError marks a parser-error-recovery range; its byte range becomes
	// an error_range for the spacing context collector.
	NodeError
)

// Node represents a single node in the Pascal syntax tree.
// Nodes form a tree structure with parent/child/sibling relationships.
type Node struct {
	Kind NodeKind

	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Token span (indices into FileSnapshot.Tokens).
	// FirstToken <= LastToken for non-empty nodes; both -1 for synthetic nodes.
	FirstToken int
	LastToken  int

	File *FileSnapshot

	// Attrs holds node-kind-specific data (e.g. the resolved routine name and
	// parameter list for a procedure/function declaration).
	Attrs *NodeAttrs
}

// NodeAttrs holds attributes attached to specific node kinds.
type NodeAttrs struct {
	// RoutineName and ParamNames are set on NodeProcedureDeclaration /
	// NodeFunctionDeclaration, and read by the inherited-call rewriter from
	// the enclosing routine.
	RoutineName string
	ParamNames  []string

	// HasParens records whether a procedure/function header already has a
	// parameter list (possibly empty) written out.
	HasParens bool
}

// AppendChild appends child as the last child of n, fixing up sibling and
// parent pointers.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	child.Prev = n.LastChild
	child.Next = nil
	if n.LastChild != nil {
		n.LastChild.Next = child
	} else {
		n.FirstChild = child
	}
	n.LastChild = child
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// nodeKindNames gives String() a name for every NodeKind without depending
// on generated code.
var nodeKindNames = map[NodeKind]string{
	NodeFile:                 "File",
	NodeUnit:                 "Unit",
	NodeProgram:              "Program",
	NodeUses:                 "Uses",
	NodeModule:               "Module",
	NodeInterface:            "Interface",
	NodeImplementation:       "Implementation",
	NodeInitialization:       "Initialization",
	NodeFinalization:         "Finalization",
	NodePrivate:              "Private",
	NodePublic:               "Public",
	NodeProtected:            "Protected",
	NodePublished:            "Published",
	NodeVarSection:           "VarSection",
	NodeConstSection:         "ConstSection",
	NodeTypeSection:          "TypeSection",
	NodeBeginKeyword:         "BeginKeyword",
	NodeEndKeyword:           "EndKeyword",
	NodeIdentifier:           "Identifier",
	NodeSemicolon:            "Semicolon",
	NodeComment:              "Comment",
	NodePreprocessor:         "Preprocessor",
	NodeProcedureDeclaration: "ProcedureDeclaration",
	NodeFunctionDeclaration:  "FunctionDeclaration",
	NodeGenericTpl:           "GenericTpl",
	NodeTyperefTpl:           "TyperefTpl",
	NodeExprTpl:              "ExprTpl",
	NodeExprUnary:            "ExprUnary",
	NodeExprBinary:           "ExprBinary",
	NodeAssignment:           "Assignment",
	NodeDefaultValue:         "DefaultValue",
	NodeDeclType:             "DeclType",
	NodeInheritedStatement:   "InheritedStatement",
	NodeError:                "Error",
}

// String returns the node kind's name, as it would appear in parse output.
func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsSectionKeyword reports whether kind is one of the single-keyword section
// headers that delimit a unit's structure (interface, implementation, var,
// const, type, and the visibility/init/final keywords).
func (k NodeKind) IsSectionKeyword() bool {
	switch k {
	case NodeInterface, NodeImplementation, NodeInitialization, NodeFinalization,
		NodePrivate, NodePublic, NodeProtected, NodePublished,
		NodeVarSection, NodeConstSection, NodeTypeSection, NodeBeginKeyword, NodeEndKeyword:
		return true
	default:
		return false
	}
}
