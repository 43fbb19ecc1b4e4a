package query

import (
	"fmt"
	"strconv"
	"strings"
)

// Parser turns a token stream into a ParsedQuery.
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser creates a new parser.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// current returns the current token.
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF, Value: ""}
	}
	return p.tokens[p.pos]
}

// advance moves to the next token.
func (p *Parser) advance() {
	p.pos++
}

// atClauseKeyword reports whether the current token starts a new clause.
func (p *Parser) atClauseKeyword() bool {
	switch p.current().Type {
	case TokenFrom, TokenWhere, TokenOrder, TokenGroup, TokenLimit:
		return true
	}
	return false
}

// skipClause discards tokens until the next clause keyword or end of input.
func (p *Parser) skipClause() {
	for p.current().Type != TokenEOF && !p.atClauseKeyword() {
		p.advance()
	}
}

// Parse parses a query string. The only hard failure is input whose leading
// keyword is not SELECT: everything else degrades to a permissive default
// (no filter, no sorting, no limit) recorded in Warnings. This preserves the
// forgiving behavior of the query surface while keeping the degradation
// observable.
func Parse(input string) (*ParsedQuery, error) {
	tokens := Tokenize(strings.TrimSpace(input))
	parser := NewParser(tokens)
	return parser.parseQuery()
}

func (p *Parser) parseQuery() (*ParsedQuery, error) {
	if p.current().Type != TokenSelect {
		return nil, ErrUnsupportedQuery
	}
	p.advance()

	q := &ParsedQuery{}
	p.parseProjection(q)

	if p.current().Type == TokenFrom {
		p.advance()
		if t := p.current(); t.Type == TokenIdent || t.Type == TokenString {
			// Any identifier is accepted; there is no real table catalog.
			q.Table = t.Value
			p.advance()
		} else {
			q.warn("missing table name after FROM")
		}
	} else {
		q.warn("missing FROM clause")
	}

	for p.current().Type != TokenEOF {
		switch p.current().Type {
		case TokenWhere:
			p.parseWhere(q)
		case TokenOrder:
			p.parseOrderBy(q)
		case TokenGroup:
			p.parseGroupBy(q)
		case TokenLimit:
			p.parseLimit(q)
		default:
			q.warn(fmt.Sprintf("ignoring unexpected token %q", p.current().Value))
			p.advance()
		}
	}

	return q, nil
}

// parseProjection reads the select list: comma-separated items between
// SELECT and the next clause keyword. A lone * selects all columns in their
// unmodified shape. Aggregate calls like COUNT(*) survive as plain
// projection tokens and are never executed.
func (p *Parser) parseProjection(q *ParsedQuery) {
	var items []string
	var current strings.Builder

	flush := func() {
		item := strings.TrimSpace(current.String())
		current.Reset()
		if item != "" {
			items = append(items, item)
		}
	}

	for p.current().Type != TokenEOF && !p.atClauseKeyword() {
		if p.current().Type == TokenComma {
			flush()
			p.advance()
			continue
		}
		current.WriteString(p.current().Value)
		p.advance()
	}
	flush()

	if len(items) == 0 {
		q.warn("empty select list; selecting all columns")
		q.Star = true
		return
	}
	if len(items) == 1 && items[0] == "*" {
		q.Star = true
		return
	}

	q.Projection = items
	for _, item := range items {
		if strings.Contains(item, "(") {
			q.warn(fmt.Sprintf("aggregate %q is parsed but not executed", item))
		}
	}
}

// parseWhere extracts the predicate: exactly `col = literal` or
// `col LIKE 'pattern'`. Any other shape means no filtering at all, per the
// documented permissive contract.
func (p *Parser) parseWhere(q *ParsedQuery) {
	p.advance() // consume WHERE

	var clause []Token
	for p.current().Type != TokenEOF && !p.atClauseKeyword() {
		clause = append(clause, p.current())
		p.advance()
	}

	pred, ok := predicateFromTokens(clause)
	if !ok {
		q.warn("unrecognized WHERE clause; no filter applied")
		return
	}
	q.Predicate = pred
}

func predicateFromTokens(clause []Token) (*Predicate, bool) {
	if len(clause) != 3 {
		return nil, false
	}
	col, op, lit := clause[0], clause[1], clause[2]
	if col.Type != TokenIdent {
		return nil, false
	}

	switch op.Type {
	case TokenEqual:
		switch lit.Type {
		case TokenString:
			return &Predicate{Column: col.Value, Op: OpEquals, Literal: lit.Value}, true
		case TokenNumber, TokenIdent:
			return &Predicate{Column: col.Value, Op: OpEquals, Literal: lit.Value}, true
		case TokenBool:
			return &Predicate{Column: col.Value, Op: OpEquals, Literal: strings.ToLower(lit.Value)}, true
		}
	case TokenLike:
		if lit.Type == TokenString {
			return &Predicate{Column: col.Value, Op: OpLike, Literal: lit.Value}, true
		}
	}
	return nil, false
}

// parseOrderBy reads ORDER BY <column> [ASC|DESC]. Direction defaults to
// ascending; a malformed clause means no sorting.
func (p *Parser) parseOrderBy(q *ParsedQuery) {
	p.advance() // consume ORDER
	if p.current().Type != TokenBy {
		q.warn("malformed ORDER BY; no sorting applied")
		p.skipClause()
		return
	}
	p.advance()

	if p.current().Type != TokenIdent {
		q.warn("malformed ORDER BY; no sorting applied")
		p.skipClause()
		return
	}
	spec := &OrderSpec{Column: p.current().Value}
	p.advance()

	switch p.current().Type {
	case TokenAsc:
		p.advance()
	case TokenDesc:
		spec.Desc = true
		p.advance()
	}
	q.OrderBy = spec
}

// parseGroupBy records GROUP BY columns. Grouping is part of the accepted
// surface but is not executed; the warning keeps that visible to the user.
func (p *Parser) parseGroupBy(q *ParsedQuery) {
	p.advance() // consume GROUP
	if p.current().Type != TokenBy {
		q.warn("malformed GROUP BY clause ignored")
		p.skipClause()
		return
	}
	p.advance()

	var cols []string
	for p.current().Type == TokenIdent {
		cols = append(cols, p.current().Value)
		p.advance()
		if p.current().Type == TokenComma {
			p.advance()
		}
	}
	if len(cols) == 0 {
		q.warn("malformed GROUP BY clause ignored")
		return
	}
	q.GroupBy = cols
	q.warn("GROUP BY is parsed but not executed; rows are returned ungrouped")
}

// parseLimit reads LIMIT <non-negative integer>.
func (p *Parser) parseLimit(q *ParsedQuery) {
	p.advance() // consume LIMIT

	t := p.current()
	if t.Type != TokenNumber {
		q.warn("malformed LIMIT; no row limit applied")
		p.skipClause()
		return
	}
	n, err := strconv.Atoi(t.Value)
	if err != nil || n < 0 {
		q.warn("malformed LIMIT; no row limit applied")
		p.advance()
		return
	}
	p.advance()
	q.Limit = &n
}

func (q *ParsedQuery) warn(msg string) {
	q.Warnings = append(q.Warnings, msg)
}
