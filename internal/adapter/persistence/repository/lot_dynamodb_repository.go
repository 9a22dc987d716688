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
	defaultLotsTableName           = "lots"
	defaultLotAssignmentsTableName = "lot_assignments"
	lotAssignmentsMachineIDIndex   = "machine_id-index"
)

type lotItem struct {
	ID          string `dynamodbav:"id"`
	Number      string `dynamodbav:"number"`
	Description string `dynamodbav:"description,omitempty"`
	LabelID     string `dynamodbav:"label_id"`
	MaxQuantity int    `dynamodbav:"max_quantity"`
	StartedAt   string `dynamodbav:"started_at"`
	EndedAt     string `dynamodbav:"ended_at,omitempty"`
	ProductCode string `dynamodbav:"product_code,omitempty"`
	Customer    string `dynamodbav:"customer,omitempty"`
	Active      bool   `dynamodbav:"active"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at,omitempty"`
}

type lotAssignmentItem struct {
	ID           string `dynamodbav:"id"`
	LotID        string `dynamodbav:"lot_id"`
	MachineID    string `dynamodbav:"machine_id"`
	Priority     int    `dynamodbav:"priority"`
	AssignedAt   string `dynamodbav:"assigned_at"`
	UnassignedAt string `dynamodbav:"unassigned_at,omitempty"`
	Active       bool   `dynamodbav:"active"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at,omitempty"`
}

// LotDynamoRepository persists Lot entities and their machine assignments in
// DynamoDB, one table each.
//
// Table requirements:
//   - lots: PK id (string); GSI number-index (PK: number)
//   - lot_assignments: PK id (string); GSI machine_id-index (PK: machine_id)

type LotDynamoRepository struct {
	ddb                  *dynamodb.Client
	tableName            string
	assignmentsTableName string
}

var _ interfaces.ILotRepository = (*LotDynamoRepository)(nil)

func NewLotDynamoRepository(ddb *dynamodb.Client) *LotDynamoRepository {
	return &LotDynamoRepository{
		ddb:                  ddb,
		tableName:            getenvDefault("LOTS_TABLE", defaultLotsTableName),
		assignmentsTableName: getenvDefault("LOT_ASSIGNMENTS_TABLE", defaultLotAssignmentsTableName),
	}
}

func (r *LotDynamoRepository) Create(ctx context.Context, l entities.Lot) (entities.Lot, error) {
	l.CreatedAt = stampCreated(l.CreatedAt)
	av, err := attributevalue.MarshalMap(toLotItem(l))
	if err != nil {
		return entities.Lot{}, err
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
		return entities.Lot{}, err
	}
	return l, nil
}

func (r *LotDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lot, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lot{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lot{}, nil
	}

	var it lotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Lot{}, err
	}
	return fromLotItem(it), nil
}

func (r *LotDynamoRepository) CreateAssignment(ctx context.Context, a entities.LotAssignment) (entities.LotAssignment, error) {
	a.CreatedAt = stampCreated(a.CreatedAt)
	av, err := attributevalue.MarshalMap(toLotAssignmentItem(a))
	if err != nil {
		return entities.LotAssignment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.assignmentsTableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.LotAssignment{}, err
	}
	return a, nil
}

func (r *LotDynamoRepository) ListActiveAssignmentsByMachineID(ctx context.Context, machineID string) ([]entities.LotAssignment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.assignmentsTableName),
		IndexName:              aws.String(lotAssignmentsMachineIDIndex),
		KeyConditionExpression: aws.String("machine_id = :mid"),
		FilterExpression:       aws.String("active = :true"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mid":  &types.AttributeValueMemberS{Value: machineID},
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, err
	}

	assignments := make([]entities.LotAssignment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it lotAssignmentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		assignments = append(assignments, fromLotAssignmentItem(it))
	}
	return assignments, nil
}

func toLotItem(l entities.Lot) lotItem {
	return lotItem{
		ID:          l.ID,
		Number:      l.Number,
		Description: l.Description,
		LabelID:     l.LabelID,
		MaxQuantity: l.MaxQuantity,
		StartedAt:   formatTime(l.StartedAt),
		EndedAt:     formatTimePtr(l.EndedAt),
		ProductCode: l.ProductCode,
		Customer:    l.Customer,
		Active:      l.Active,
		CreatedAt:   formatTime(l.CreatedAt),
		UpdatedAt:   formatTimePtr(l.UpdatedAt),
	}
}

func fromLotItem(it lotItem) entities.Lot {
	return entities.Lot{
		ID:          it.ID,
		Number:      it.Number,
		Description: it.Description,
		LabelID:     it.LabelID,
		MaxQuantity: it.MaxQuantity,
		StartedAt:   parseTime(it.StartedAt),
		EndedAt:     parseTimePtr(it.EndedAt),
		ProductCode: it.ProductCode,
		Customer:    it.Customer,
		Active:      it.Active,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTimePtr(it.UpdatedAt),
	}
}

func toLotAssignmentItem(a entities.LotAssignment) lotAssignmentItem {
	return lotAssignmentItem{
		ID:           a.ID,
		LotID:        a.LotID,
		MachineID:    a.MachineID,
		Priority:     a.Priority,
		AssignedAt:   formatTime(a.AssignedAt),
		UnassignedAt: formatTimePtr(a.UnassignedAt),
		Active:       a.Active,
		CreatedAt:    formatTime(a.CreatedAt),
		UpdatedAt:    formatTimePtr(a.UpdatedAt),
	}
}

func fromLotAssignmentItem(it lotAssignmentItem) entities.LotAssignment {
	return entities.LotAssignment{
		ID:           it.ID,
		LotID:        it.LotID,
		MachineID:    it.MachineID,
		Priority:     it.Priority,
		AssignedAt:   parseTime(it.AssignedAt),
		UnassignedAt: parseTimePtr(it.UnassignedAt),
		Active:       it.Active,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTimePtr(it.UpdatedAt),
	}
}
