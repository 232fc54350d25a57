// Package dynamo adapts built expressions to the AWS SDK for Go v2. It
// converts literal values into DynamoDB attribute values and constructs the
// SDK input structs, populating only the expression fields each operation
// accepts.
package dynamo

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/CaliLuke/go-dynexpr/ast"
	"github.com/CaliLuke/go-dynexpr/expr"
)

// AttributeValue converts a literal value to its SDK representation.
func AttributeValue(v ast.Value) (types.AttributeValue, error) {
	switch val := v.(type) {
	case ast.StringValue:
		return &types.AttributeValueMemberS{Value: val.Val}, nil
	case ast.NumValue:
		return &types.AttributeValueMemberN{Value: val.N}, nil
	case ast.BoolValue:
		return &types.AttributeValueMemberBOOL{Value: val.Val}, nil
	case ast.BinaryValue:
		return &types.AttributeValueMemberB{Value: val.Val}, nil
	case ast.NullValue:
		return &types.AttributeValueMemberNULL{Value: true}, nil
	case ast.StringSetValue:
		return &types.AttributeValueMemberSS{Value: val.Vals}, nil
	case ast.NumSetValue:
		return &types.AttributeValueMemberNS{Value: val.Vals}, nil
	case ast.BinarySetValue:
		return &types.AttributeValueMemberBS{Value: val.Vals}, nil
	case ast.ListValue:
		items := make([]types.AttributeValue, 0, len(val.Items))
		for _, item := range val.Items {
			av, err := AttributeValue(item)
			if err != nil {
				return nil, err
			}
			items = append(items, av)
		}
		return &types.AttributeValueMemberL{Value: items}, nil
	case ast.MapValue:
		entries := make(map[string]types.AttributeValue, len(val.Entries))
		for k, item := range val.Entries {
			av, err := AttributeValue(item)
			if err != nil {
				return nil, err
			}
			entries[k] = av
		}
		return &types.AttributeValueMemberM{Value: entries}, nil
	default:
		return nil, fmt.Errorf("unknown value type: %T", v)
	}
}

// AttributeValues converts an expression's value table to its SDK
// representation. A nil table converts to nil.
func AttributeValues(e expr.Expression) (map[string]types.AttributeValue, error) {
	if e.Values == nil {
		return nil, nil
	}
	out := make(map[string]types.AttributeValue, len(e.Values))
	for ph, v := range e.Values {
		av, err := AttributeValue(v)
		if err != nil {
			return nil, err
		}
		out[ph] = av
	}
	return out, nil
}
