package store

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jacentio/arbor/record"
)

// DynamoAPI is the subset of the DynamoDB client used by the Store.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// Store provides the record operations against a single DynamoDB table.
type Store struct {
	client DynamoAPI
	config Config
}

// New creates a new Store instance.
func New(client DynamoAPI, config Config) *Store {
	config.validate()
	return &Store{
		client: client,
		config: config,
	}
}

// TodoFields are the mutable attributes of a todo record.
type TodoFields struct {
	Text    string
	Checked bool
}

func (s *Store) key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

// Put writes a record unconditionally, overwriting any item with the
// same id.
func (s *Store) Put(ctx context.Context, rec record.Record) error {
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return &Error{Op: "put", Status: defaultPutStatus, Err: err}
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.config.Table),
		Item:      item,
	})
	if err != nil {
		return wrap("put", err, defaultPutStatus)
	}
	return nil
}

// GetByID looks up a record by id. Absence is not an error: a missing id
// yields (nil, nil).
func (s *Store) GetByID(ctx context.Context, id string) (*record.Record, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.config.Table),
		Key:       s.key(id),
	})
	if err != nil {
		return nil, wrap("get", err, defaultReadStatus)
	}
	if result.Item == nil {
		return nil, nil
	}

	var rec record.Record
	if err := attributevalue.UnmarshalMap(result.Item, &rec); err != nil {
		return nil, &Error{Op: "get", Status: defaultReadStatus, Err: err}
	}
	return &rec, nil
}

// ScanAll reads the full table, unordered. Only the first scan page is
// read; see the package doc for the truncation caveat.
func (s *Store) ScanAll(ctx context.Context) ([]record.Record, error) {
	result, err := s.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.config.Table),
	})
	if err != nil {
		return nil, wrap("scan", err, defaultReadStatus)
	}

	var recs []record.Record
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &recs); err != nil {
		return nil, &Error{Op: "scan", Status: defaultReadStatus, Err: err}
	}
	return recs, nil
}

// Update sets the todo fields and updatedAt on a record and returns the
// post-update image.
func (s *Store) Update(ctx context.Context, id string, fields TodoFields, now time.Time) (*record.Record, error) {
	updatedAt, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, &Error{Op: "update", Status: defaultReadStatus, Err: err}
	}

	result, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(s.config.Table),
		Key:              s.key(id),
		UpdateExpression: aws.String("SET #text = :text, checked = :checked, updatedAt = :updatedAt"),
		// "text" is a DynamoDB reserved word.
		ExpressionAttributeNames: map[string]string{"#text": "text"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":text":      &types.AttributeValueMemberS{Value: fields.Text},
			":checked":   &types.AttributeValueMemberBOOL{Value: fields.Checked},
			":updatedAt": updatedAt,
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return nil, wrap("update", err, defaultReadStatus)
	}

	var rec record.Record
	if err := attributevalue.UnmarshalMap(result.Attributes, &rec); err != nil {
		return nil, &Error{Op: "update", Status: defaultReadStatus, Err: err}
	}
	return &rec, nil
}

// Delete removes a record by id. Deleting a missing id is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.config.Table),
		Key:       s.key(id),
	})
	if err != nil {
		return wrap("delete", err, defaultReadStatus)
	}
	return nil
}
