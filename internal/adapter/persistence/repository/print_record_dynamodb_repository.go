package repository

import (
	"context"
	"errors"
	"time"

	"labelpress/internal/domain/entities"
	"labelpress/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPrintRecordsTableName  = "print_records"
	printRecordsMachineIDIndex    = "machine_id-index"
	printRecordsLotIDIndex        = "lot_id-index"
	printRecordsMachineLabelIndex = "machine_label-index"
)

type printRecordItem struct {
	ID                 string `dynamodbav:"id"`
	MachineID          string `dynamodbav:"machine_id,omitempty"`
	PrinterID          string `dynamodbav:"printer_id,omitempty"`
	EmployeeID         string `dynamodbav:"employee_id,omitempty"`
	LotID              string `dynamodbav:"lot_id,omitempty"`
	LabelID            string `dynamodbav:"label_id,omitempty"`
	MachineLabel       string `dynamodbav:"machine_label,omitempty"`
	Quantity           int    `dynamodbav:"quantity"`
	State              string `dynamodbav:"state"`
	RequestedAt        string `dynamodbav:"requested_at"`
	AuthorizedAt       string `dynamodbav:"authorized_at,omitempty"`
	ExecutedAt         string `dynamodbav:"executed_at,omitempty"`
	Result             string `dynamodbav:"result,omitempty"`
	ErrorMessage       string `dynamodbav:"error_message,omitempty"`
	DenialReason       string `dynamodbav:"denial_reason,omitempty"`
	OriginIP           string `dynamodbav:"origin_ip,omitempty"`
	AuthorizedByUserID string `dynamodbav:"authorized_by_user_id,omitempty"`
	ZPLHash            string `dynamodbav:"zpl_hash,omitempty"`
}

// quantityProjection is enough for quota sums; the full item is not needed.
type quantityProjection struct {
	Quantity int `dynamodbav:"quantity"`
}

// PrintRecordDynamoRepository persists the append-only print-record ledger
// in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: machine_id-index (PK: machine_id, SK: requested_at)
//   - GSI: lot_id-index (PK: lot_id)
//   - GSI: machine_label-index (PK: machine_label)
//
// The machine_id-index doubles as the quota lookup for the daily machine
// limit: query by machine and requested_at range, filter on state, sum the
// quantities client-side.

type PrintRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPrintRecordRepository = (*PrintRecordDynamoRepository)(nil)

func NewPrintRecordDynamoRepository(ddb *dynamodb.Client) *PrintRecordDynamoRepository {
	return &PrintRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRINT_RECORDS_TABLE", defaultPrintRecordsTableName),
	}
}

func (r *PrintRecordDynamoRepository) Create(ctx context.Context, rec entities.PrintRecord) (entities.PrintRecord, error) {
	av, err := attributevalue.MarshalMap(toPrintRecordItem(rec))
	if err != nil {
		return entities.PrintRecord{}, err
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
		return entities.PrintRecord{}, err
	}
	return rec, nil
}

func (r *PrintRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.PrintRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PrintRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PrintRecord{}, nil
	}

	var it printRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PrintRecord{}, err
	}
	return fromPrintRecordItem(it), nil
}

func (r *PrintRecordDynamoRepository) UpdateExecution(ctx context.Context, id string, state entities.PrintState, executedAt time.Time, result, errorMessage string) (entities.PrintRecord, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #state = :state, #executed_at = :executed_at, #result = :result, #error_message = :error_message"),
		ExpressionAttributeNames: map[string]string{
			"#id":            "id",
			"#state":         "state",
			"#executed_at":   "executed_at",
			"#result":        "result",
			"#error_message": "error_message",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":state":         &types.AttributeValueMemberS{Value: string(state)},
			":executed_at":   &types.AttributeValueMemberS{Value: formatTime(executedAt)},
			":result":        &types.AttributeValueMemberS{Value: result},
			":error_message": &types.AttributeValueMemberS{Value: errorMessage},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PrintRecord{}, nil
		}
		return entities.PrintRecord{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PrintRecord{}, nil
	}

	var it printRecordItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PrintRecord{}, err
	}
	return fromPrintRecordItem(it), nil
}

func (r *PrintRecordDynamoRepository) SumQuantityForMachineSince(ctx context.Context, machineID string, since time.Time) (int, error) {
	return r.sum(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(printRecordsMachineIDIndex),
		KeyConditionExpression: aws.String("machine_id = :mid AND requested_at >= :since"),
		FilterExpression:       aws.String(consumingStatesFilter),
		ExpressionAttributeNames: map[string]string{
			"#state": "state",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mid":        &types.AttributeValueMemberS{Value: machineID},
			":since":      &types.AttributeValueMemberS{Value: formatTime(since)},
			":authorized": &types.AttributeValueMemberS{Value: string(entities.PrintStateAuthorized)},
			":executed":   &types.AttributeValueMemberS{Value: string(entities.PrintStateExecuted)},
		},
		ProjectionExpression: aws.String("quantity"),
	})
}

func (r *PrintRecordDynamoRepository) SumQuantityForLot(ctx context.Context, lotID string) (int, error) {
	return r.sum(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(printRecordsLotIDIndex),
		KeyConditionExpression: aws.String("lot_id = :lid"),
		FilterExpression:       aws.String(consumingStatesFilter),
		ExpressionAttributeNames: map[string]string{
			"#state": "state",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lid":        &types.AttributeValueMemberS{Value: lotID},
			":authorized": &types.AttributeValueMemberS{Value: string(entities.PrintStateAuthorized)},
			":executed":   &types.AttributeValueMemberS{Value: string(entities.PrintStateExecuted)},
		},
		ProjectionExpression: aws.String("quantity"),
	})
}

func (r *PrintRecordDynamoRepository) SumQuantityForMachineLabel(ctx context.Context, machineID, labelID string) (int, error) {
	return r.sum(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(printRecordsMachineLabelIndex),
		KeyConditionExpression: aws.String("machine_label = :ml"),
		FilterExpression:       aws.String(consumingStatesFilter),
		ExpressionAttributeNames: map[string]string{
			"#state": "state",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ml":         &types.AttributeValueMemberS{Value: machineLabelKey(machineID, labelID)},
			":authorized": &types.AttributeValueMemberS{Value: string(entities.PrintStateAuthorized)},
			":executed":   &types.AttributeValueMemberS{Value: string(entities.PrintStateExecuted)},
		},
		ProjectionExpression: aws.String("quantity"),
	})
}

// Only authorized and executed records consume quota.
const consumingStatesFilter = "#state IN (:authorized, :executed)"

// sum runs a quota query to completion, following pagination, and adds up
// the projected quantities.
func (r *PrintRecordDynamoRepository) sum(ctx context.Context, input *dynamodb.QueryInput) (int, error) {
	total := 0
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return 0, err
		}
		for _, raw := range out.Items {
			var p quantityProjection
			if err := attributevalue.UnmarshalMap(raw, &p); err != nil {
				return 0, err
			}
			total += p.Quantity
		}
		if out.LastEvaluatedKey == nil {
			return total, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func toPrintRecordItem(rec entities.PrintRecord) printRecordItem {
	it := printRecordItem{
		ID:                 rec.ID,
		MachineID:          rec.MachineID,
		PrinterID:          rec.PrinterID,
		EmployeeID:         rec.EmployeeID,
		LotID:              rec.LotID,
		LabelID:            rec.LabelID,
		Quantity:           rec.Quantity,
		State:              string(rec.State),
		RequestedAt:        formatTime(rec.RequestedAt),
		AuthorizedAt:       formatTimePtr(rec.AuthorizedAt),
		ExecutedAt:         formatTimePtr(rec.ExecutedAt),
		Result:             rec.Result,
		ErrorMessage:       rec.ErrorMessage,
		DenialReason:       rec.DenialReason,
		OriginIP:           rec.OriginIP,
		AuthorizedByUserID: rec.AuthorizedByUserID,
		ZPLHash:            rec.ZPLHash,
	}
	if rec.MachineID != "" && rec.LabelID != "" {
		it.MachineLabel = machineLabelKey(rec.MachineID, rec.LabelID)
	}
	return it
}

func fromPrintRecordItem(it printRecordItem) entities.PrintRecord {
	return entities.PrintRecord{
		ID:                 it.ID,
		MachineID:          it.MachineID,
		PrinterID:          it.PrinterID,
		EmployeeID:         it.EmployeeID,
		LotID:              it.LotID,
		LabelID:            it.LabelID,
		Quantity:           it.Quantity,
		State:              entities.PrintState(it.State),
		RequestedAt:        parseTime(it.RequestedAt),
		AuthorizedAt:       parseTimePtr(it.AuthorizedAt),
		ExecutedAt:         parseTimePtr(it.ExecutedAt),
		Result:             it.Result,
		ErrorMessage:       it.ErrorMessage,
		DenialReason:       it.DenialReason,
		OriginIP:           it.OriginIP,
		AuthorizedByUserID: it.AuthorizedByUserID,
		ZPLHash:            it.ZPLHash,
	}
}
