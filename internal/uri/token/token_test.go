package token

import (
	stderrors "errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-lang/odatacore/internal/errors"
	"github.com/conduit-lang/odatacore/internal/uri/literal"
)

func TestConstructorsRejectEmptyIdentifiers(t *testing.T) {
	_, err := NewIdentifier("", nil)
	assert.ErrorIs(t, err, errors.ErrArgument)

	_, err = NewTypeCast("", nil)
	assert.ErrorIs(t, err, errors.ErrArgument)

	_, err = NewSystem("", nil)
	assert.ErrorIs(t, err, errors.ErrArgument)

	_, err = NewKey(nil, nil)
	assert.ErrorIs(t, err, errors.ErrArgument)
}

func TestNamespaceQualification(t *testing.T) {
	qualified, err := NewIdentifier("Default.People", nil)
	require.NoError(t, err)
	plain, err := NewIdentifier("People", nil)
	require.NoError(t, err)
	cast, err := NewTypeCast("NS.Employee", nil)
	require.NoError(t, err)
	sys, err := NewSystem("$count", nil)
	require.NoError(t, err)
	key, err := NewKey([]literal.KeyValue{{Value: "a.b"}}, nil)
	require.NoError(t, err)

	assert.True(t, qualified.IsNamespaceOrContainerQualified())
	assert.False(t, plain.IsNamespaceOrContainerQualified())
	assert.True(t, cast.IsNamespaceOrContainerQualified())
	assert.False(t, sys.IsNamespaceOrContainerQualified())
	assert.False(t, key.IsNamespaceOrContainerQualified())
}

func TestBuildKeepsPathOrder(t *testing.T) {
	head, err := Build(Ident("People"), Key("1"), Cast("NS.Employee"), Ident("Friends"), System("$count"))
	require.NoError(t, err)

	var kinds []Kind
	var ids []string
	for tok := range Segments(head) {
		kinds = append(kinds, tok.Kind())
		ids = append(ids, tok.Identifier())
	}

	assert.Equal(t, []Kind{KindIdentifier, KindKey, KindTypeCast, KindIdentifier, KindSystem}, kinds)
	assert.Equal(t, []string{"People", "'1'", "NS.Employee", "Friends", "$count"}, ids)
	assert.Equal(t, 5, Len(head))
	assert.Equal(t, "$count", Last(head).Identifier())
	assert.Equal(t, "People('1')/NS.Employee/Friends/$count", String(head))
}

func TestBuildPropagatesErrors(t *testing.T) {
	head, err := Build(Ident("People"), Ident(""))
	assert.Nil(t, head)
	assert.ErrorIs(t, err, errors.ErrArgument)

	head, err = Build()
	require.NoError(t, err)
	assert.Nil(t, head)
	assert.Equal(t, "", String(head))
	assert.Nil(t, Last(head))
}

func TestCompositeKeyIdentifier(t *testing.T) {
	head, err := Build(Ident("Orders"), CompositeKey(
		literal.KeyValue{Name: "Region", Value: "EU"},
		literal.KeyValue{Name: "Number", Value: 7},
	))
	require.NoError(t, err)

	assert.Equal(t, "Orders(Region='EU',Number=7)", String(head))
	key := head.Next().(*KeyToken)
	assert.Len(t, key.Values(), 2)
}

type recorder struct {
	visited []string
}

func (r *recorder) VisitIdentifier(t *IdentifierToken) error {
	r.visited = append(r.visited, "id:"+t.Identifier())
	return nil
}

func (r *recorder) VisitTypeCast(t *TypeCastToken) error {
	r.visited = append(r.visited, "cast:"+t.Identifier())
	return nil
}

func (r *recorder) VisitKey(t *KeyToken) error {
	r.visited = append(r.visited, "key:"+t.Identifier())
	return nil
}

func (r *recorder) VisitSystem(t *SystemToken) error {
	r.visited = append(r.visited, "sys:"+t.Identifier())
	return nil
}

func TestWalkDispatchesByKind(t *testing.T) {
	head, err := Build(Ident("People"), Key(1), Cast("NS.Employee"), System("$value"))
	require.NoError(t, err)

	r := &recorder{}
	require.NoError(t, Walk(head, r))
	assert.Equal(t, []string{"id:People", "key:1", "cast:NS.Employee", "sys:$value"}, r.visited)
}

func TestWalkStopsAtFirstError(t *testing.T) {
	head, err := Build(Ident("A"), Ident("B"), Ident("C"))
	require.NoError(t, err)

	boom := stderrors.New("boom")
	var seen []string
	err = Walk(head, ActionFuncs{Identifier: func(tok *IdentifierToken) error {
		seen = append(seen, tok.Identifier())
		if tok.Identifier() == "B" {
			return boom
		}
		return nil
	}})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"A", "B"}, seen)
}

func TestAcceptRejectsNilVisitor(t *testing.T) {
	head, err := Build(Ident("A"), Key(1), Cast("NS.T"), System("$count"))
	require.NoError(t, err)

	for tok := range Segments(head) {
		assert.ErrorIs(t, tok.Accept(nil), errors.ErrArgument, tok.Kind().String())
	}
	assert.ErrorIs(t, Walk(head, nil), errors.ErrArgument)
}

type kindNamer struct{}

func (kindNamer) VisitIdentifier(*IdentifierToken) (string, error) { return "identifier", nil }
func (kindNamer) VisitTypeCast(*TypeCastToken) (string, error)     { return "cast", nil }
func (kindNamer) VisitKey(*KeyToken) (string, error)               { return "key", nil }
func (kindNamer) VisitSystem(*SystemToken) (string, error)         { return "system", nil }

func TestApplyAndMap(t *testing.T) {
	head, err := Build(Ident("People"), Key("x"), Cast("NS.Employee"), System("$count"))
	require.NoError(t, err)

	got, err := Apply[string](head, kindNamer{})
	require.NoError(t, err)
	assert.Equal(t, "identifier", got)

	all, err := Map[string](head, kindNamer{})
	require.NoError(t, err)
	assert.True(t, slices.Equal([]string{"identifier", "key", "cast", "system"}, all))

	_, err = Apply[string](head, nil)
	assert.ErrorIs(t, err, errors.ErrArgument)

	_, err = Apply[string](nil, kindNamer{})
	assert.ErrorIs(t, err, errors.ErrArgument)
}
