package repository

import (
	"context"

	"labelpress/internal/domain/entities"
	"labelpress/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEmployeesTableName = "employees"
	employeesNumberIndex      = "number-index"
)

type employeeItem struct {
	ID         string `dynamodbav:"id"`
	Number     string `dynamodbav:"number"`
	FirstName  string `dynamodbav:"first_name"`
	LastName   string `dynamodbav:"last_name"`
	Department string `dynamodbav:"department,omitempty"`
	Position   string `dynamodbav:"position,omitempty"`
	HiredAt    string `dynamodbav:"hired_at"`
	Active     bool   `dynamodbav:"active"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at,omitempty"`
}

// EmployeeDynamoRepository persists Employee entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: number-index (PK: number)

type EmployeeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEmployeeRepository = (*EmployeeDynamoRepository)(nil)

func NewEmployeeDynamoRepository(ddb *dynamodb.Client) *EmployeeDynamoRepository {
	return &EmployeeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EMPLOYEES_TABLE", defaultEmployeesTableName),
	}
}

func (r *EmployeeDynamoRepository) Create(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	e.CreatedAt = stampCreated(e.CreatedAt)
	av, err := attributevalue.MarshalMap(toEmployeeItem(e))
	if err != nil {
		return entities.Employee{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Employee{}, err
	}
	return e, nil
}

func (r *EmployeeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Employee, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Employee{}, err
	}
	if len(out.Item) == 0 {
		return entities.Employee{}, nil
	}

	var it employeeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Employee{}, err
	}
	return fromEmployeeItem(it), nil
}

func (r *EmployeeDynamoRepository) GetActiveByNumber(ctx context.Context, number string) (entities.Employee, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(employeesNumberIndex),
		KeyConditionExpression: aws.String("#n = :num"),
		FilterExpression:       aws.String("active = :true"),
		ExpressionAttributeNames: map[string]string{
			"#n": "number",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":num":  &types.AttributeValueMemberS{Value: number},
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return entities.Employee{}, err
	}
	if len(out.Items) == 0 {
		return entities.Employee{}, nil
	}

	var it employeeItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Employee{}, err
	}
	return fromEmployeeItem(it), nil
}

func toEmployeeItem(e entities.Employee) employeeItem {
	return employeeItem{
		ID:         e.ID,
		Number:     e.Number,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Department: e.Department,
		Position:   e.Position,
		HiredAt:    formatTime(e.HiredAt),
		Active:     e.Active,
		CreatedAt:  formatTime(e.CreatedAt),
		UpdatedAt:  formatTimePtr(e.UpdatedAt),
	}
}

func fromEmployeeItem(it employeeItem) entities.Employee {
	return entities.Employee{
		ID:         it.ID,
		Number:     it.Number,
		FirstName:  it.FirstName,
		LastName:   it.LastName,
		Department: it.Department,
		Position:   it.Position,
		HiredAt:    parseTime(it.HiredAt),
		Active:     it.Active,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTimePtr(it.UpdatedAt),
	}
}
