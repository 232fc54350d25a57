package dynamo

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/CaliLuke/go-dynexpr/expr"
)

// Each constructor copies into the SDK input only the expression fields that
// operation accepts. Slots the operation cannot use (a filter on a PutItem,
// say) are silently left behind, so one built Expression can parameterize
// several operations. Empty strings become nil pointers and empty tables
// stay nil, since DynamoDB rejects empty expression attributes.

// QueryInput builds a Query request carrying the key condition, filter, and
// projection.
func QueryInput(e expr.Expression, table string) (*dynamodb.QueryInput, error) {
	values, err := AttributeValues(e)
	if err != nil {
		return nil, err
	}
	return &dynamodb.QueryInput{
		TableName:                 aws.String(table),
		KeyConditionExpression:    optional(e.KeyCondition),
		FilterExpression:          optional(e.Filter),
		ProjectionExpression:      optional(e.Projection),
		ExpressionAttributeNames:  e.Names,
		ExpressionAttributeValues: values,
	}, nil
}

// ScanInput builds a Scan request carrying the filter and projection.
func ScanInput(e expr.Expression, table string) (*dynamodb.ScanInput, error) {
	values, err := AttributeValues(e)
	if err != nil {
		return nil, err
	}
	return &dynamodb.ScanInput{
		TableName:                 aws.String(table),
		FilterExpression:          optional(e.Filter),
		ProjectionExpression:      optional(e.Projection),
		ExpressionAttributeNames:  e.Names,
		ExpressionAttributeValues: values,
	}, nil
}

// GetItemInput builds a GetItem request carrying the projection. GetItem
// takes no value-bearing expressions, so the value table is not used.
func GetItemInput(e expr.Expression, table string, key map[string]types.AttributeValue) *dynamodb.GetItemInput {
	return &dynamodb.GetItemInput{
		TableName:                aws.String(table),
		Key:                      key,
		ProjectionExpression:     optional(e.Projection),
		ExpressionAttributeNames: e.Names,
	}
}

// PutItemInput builds a PutItem request carrying the condition.
func PutItemInput(e expr.Expression, table string, item map[string]types.AttributeValue) (*dynamodb.PutItemInput, error) {
	values, err := AttributeValues(e)
	if err != nil {
		return nil, err
	}
	return &dynamodb.PutItemInput{
		TableName:                 aws.String(table),
		Item:                      item,
		ConditionExpression:       optional(e.Condition),
		ExpressionAttributeNames:  e.Names,
		ExpressionAttributeValues: values,
	}, nil
}

// UpdateItemInput builds an UpdateItem request carrying the update and
// condition.
func UpdateItemInput(e expr.Expression, table string, key map[string]types.AttributeValue) (*dynamodb.UpdateItemInput, error) {
	values, err := AttributeValues(e)
	if err != nil {
		return nil, err
	}
	return &dynamodb.UpdateItemInput{
		TableName:                 aws.String(table),
		Key:                       key,
		UpdateExpression:          optional(e.Update),
		ConditionExpression:       optional(e.Condition),
		ExpressionAttributeNames:  e.Names,
		ExpressionAttributeValues: values,
	}, nil
}

// DeleteItemInput builds a DeleteItem request carrying the condition.
func DeleteItemInput(e expr.Expression, table string, key map[string]types.AttributeValue) (*dynamodb.DeleteItemInput, error) {
	values, err := AttributeValues(e)
	if err != nil {
		return nil, err
	}
	return &dynamodb.DeleteItemInput{
		TableName:                 aws.String(table),
		Key:                       key,
		ConditionExpression:       optional(e.Condition),
		ExpressionAttributeNames:  e.Names,
		ExpressionAttributeValues: values,
	}, nil
}

// ConditionCheck builds a transaction condition check carrying the
// condition.
func ConditionCheck(e expr.Expression, table string, key map[string]types.AttributeValue) (types.ConditionCheck, error) {
	values, err := AttributeValues(e)
	if err != nil {
		return types.ConditionCheck{}, err
	}
	return types.ConditionCheck{
		TableName:                 aws.String(table),
		Key:                       key,
		ConditionExpression:       optional(e.Condition),
		ExpressionAttributeNames:  e.Names,
		ExpressionAttributeValues: values,
	}, nil
}

// KeysAndAttributes builds a BatchGetItem per-table entry carrying the
// projection.
func KeysAndAttributes(e expr.Expression, keys []map[string]types.AttributeValue) types.KeysAndAttributes {
	return types.KeysAndAttributes{
		Keys:                     keys,
		ProjectionExpression:     optional(e.Projection),
		ExpressionAttributeNames: e.Names,
	}
}

// optional maps the empty string to a nil pointer.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return aws.String(s)
}
