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
	defaultMachinesTableName = "machines"
	machinesCodeIndex        = "code-index"
	machinesHostnameIndex    = "hostname-index"
	machinesMACIndex         = "mac-index"
)

type machineItem struct {
	ID              string `dynamodbav:"id"`
	Code            string `dynamodbav:"code"`
	Name            string `dynamodbav:"name"`
	Description     string `dynamodbav:"description,omitempty"`
	Hostname        string `dynamodbav:"hostname,omitempty"`
	MACAddress      string `dynamodbav:"mac_address,omitempty"`
	DailyPrintLimit int    `dynamodbav:"daily_print_limit"`
	RegisteredAt    string `dynamodbav:"registered_at"`
	Active          bool   `dynamodbav:"active"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at,omitempty"`
}

// MachineDynamoRepository persists Machine entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: code-index (PK: code), hostname-index (PK: hostname),
//     mac-index (PK: mac_address)

type MachineDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMachineRepository = (*MachineDynamoRepository)(nil)

func NewMachineDynamoRepository(ddb *dynamodb.Client) *MachineDynamoRepository {
	return &MachineDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MACHINES_TABLE", defaultMachinesTableName),
	}
}

func (r *MachineDynamoRepository) Create(ctx context.Context, m entities.Machine) (entities.Machine, error) {
	m.CreatedAt = stampCreated(m.CreatedAt)
	it := toMachineItem(m)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Machine{}, err
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
		return entities.Machine{}, err
	}
	return m, nil
}

func (r *MachineDynamoRepository) GetByID(ctx context.Context, id string) (entities.Machine, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Machine{}, err
	}
	if len(out.Item) == 0 {
		return entities.Machine{}, nil
	}

	var it machineItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Machine{}, err
	}
	return fromMachineItem(it), nil
}

// GetByIdentifier resolves a machine by code, hostname or MAC address, in
// that order. The lookups are case-sensitive and the first index that yields
// an item wins; uniqueness across the three identifier spaces is a data-entry
// responsibility.
func (r *MachineDynamoRepository) GetByIdentifier(ctx context.Context, identifier string) (entities.Machine, error) {
	lookups := []struct {
		index string
		attr  string
	}{
		{machinesCodeIndex, "code"},
		{machinesHostnameIndex, "hostname"},
		{machinesMACIndex, "mac_address"},
	}

	for _, l := range lookups {
		m, err := r.queryOne(ctx, l.index, l.attr, identifier)
		if err != nil {
			return entities.Machine{}, err
		}
		if m.ID != "" {
			return m, nil
		}
	}
	return entities.Machine{}, nil
}

func (r *MachineDynamoRepository) queryOne(ctx context.Context, index, attr, value string) (entities.Machine, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Machine{}, err
	}
	if len(out.Items) == 0 {
		return entities.Machine{}, nil
	}

	var it machineItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Machine{}, err
	}
	return fromMachineItem(it), nil
}

func toMachineItem(m entities.Machine) machineItem {
	return machineItem{
		ID:              m.ID,
		Code:            m.Code,
		Name:            m.Name,
		Description:     m.Description,
		Hostname:        m.Hostname,
		MACAddress:      m.MACAddress,
		DailyPrintLimit: m.DailyPrintLimit,
		RegisteredAt:    formatTime(m.RegisteredAt),
		Active:          m.Active,
		CreatedAt:       formatTime(m.CreatedAt),
		UpdatedAt:       formatTimePtr(m.UpdatedAt),
	}
}

func fromMachineItem(it machineItem) entities.Machine {
	return entities.Machine{
		ID:              it.ID,
		Code:            it.Code,
		Name:            it.Name,
		Description:     it.Description,
		Hostname:        it.Hostname,
		MACAddress:      it.MACAddress,
		DailyPrintLimit: it.DailyPrintLimit,
		RegisteredAt:    parseTime(it.RegisteredAt),
		Active:          it.Active,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTimePtr(it.UpdatedAt),
	}
}
