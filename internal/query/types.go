package query

import "errors"

// ErrUnsupportedQuery reports input that does not begin with SELECT. The
// message is shown verbatim to the user.
var ErrUnsupportedQuery = errors.New("unsupported query: only SELECT statements are supported")

// TokenType represents the type of a token.
type TokenType int

const (
	// Keywords
	TokenSelect TokenType = iota
	TokenFrom
	TokenWhere
	TokenLike
	TokenOrder
	TokenGroup
	TokenBy
	TokenAsc
	TokenDesc
	TokenLimit

	// Operators
	TokenEqual // =

	// Literals
	TokenString
	TokenNumber
	TokenIdent
	TokenBool

	// Delimiters
	TokenComma      // ,
	TokenLeftParen  // (
	TokenRightParen // )

	// Special
	TokenEOF
	TokenError
)

// Token represents a lexical token.
type Token struct {
	Type  TokenType
	Value string
}

// Operator identifies the comparison form of a predicate.
type Operator int

const (
	OpEquals Operator = iota
	OpLike
)

// Predicate is a single column/operator/literal comparison from a WHERE
// clause.
type Predicate struct {
	Column  string
	Op      Operator
	Literal string
}

// OrderSpec is the sort key and direction from an ORDER BY clause.
type OrderSpec struct {
	Column string
	Desc   bool
}

// ParsedQuery is the structured form of one SELECT statement. It is built
// fresh for every execution, never mutated, and discarded after use.
type ParsedQuery struct {
	Projection []string // requested column names; empty when Star is set
	Star       bool     // SELECT *
	Table      string   // FROM target, accepted unvalidated
	Predicate  *Predicate
	GroupBy    []string // recorded but never executed
	OrderBy    *OrderSpec
	Limit      *int
	Warnings   []string // permissive-degradation notes, surfaced with results
}
