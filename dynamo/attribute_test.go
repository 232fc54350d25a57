package dynamo

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CaliLuke/go-dynexpr/ast"
	"github.com/CaliLuke/go-dynexpr/expr"
)

func TestAttributeValueScalars(t *testing.T) {
	tests := []struct {
		name string
		in   ast.Value
		want types.AttributeValue
	}{
		{"string", ast.Str("fish"), &types.AttributeValueMemberS{Value: "fish"}},
		{"number", ast.Num(42), &types.AttributeValueMemberN{Value: "42"}},
		{"float", ast.Num(2.5), &types.AttributeValueMemberN{Value: "2.5"}},
		{"bool", ast.Bool(true), &types.AttributeValueMemberBOOL{Value: true}},
		{"binary", ast.Binary([]byte("a")), &types.AttributeValueMemberB{Value: []byte("a")}},
		{"null", ast.Null(), &types.AttributeValueMemberNULL{Value: true}},
		{"string set", ast.StringSet("b", "a"), &types.AttributeValueMemberSS{Value: []string{"a", "b"}}},
		{"number set", ast.NumSet(42, -7), &types.AttributeValueMemberNS{Value: []string{"-7", "42"}}},
		{"binary set", ast.BinarySet([]byte("a")), &types.AttributeValueMemberBS{Value: [][]byte{[]byte("a")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AttributeValue(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAttributeValueNested(t *testing.T) {
	in := ast.Map(map[string]ast.Value{
		"items": ast.List(ast.Str("a"), ast.Num(1)),
		"ok":    ast.Bool(false),
	})

	got, err := AttributeValue(in)
	require.NoError(t, err)

	want := &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
		"items": &types.AttributeValueMemberL{Value: []types.AttributeValue{
			&types.AttributeValueMemberS{Value: "a"},
			&types.AttributeValueMemberN{Value: "1"},
		}},
		"ok": &types.AttributeValueMemberBOOL{Value: false},
	}}
	assert.Equal(t, want, got)
}

func TestAttributeValuesTable(t *testing.T) {
	e, err := expr.NewBuilder().
		WithCondition(ast.NewPath("age").GreaterThan(ast.Num(25))).
		Build()
	require.NoError(t, err)

	got, err := AttributeValues(e)
	require.NoError(t, err)
	assert.Equal(t, map[string]types.AttributeValue{
		":0": &types.AttributeValueMemberN{Value: "25"},
	}, got)
}

func TestAttributeValuesNilTable(t *testing.T) {
	got, err := AttributeValues(expr.Expression{})
	require.NoError(t, err)
	assert.Nil(t, got)
}
