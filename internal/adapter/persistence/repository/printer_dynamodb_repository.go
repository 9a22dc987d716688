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
	defaultPrintersTableName = "printers"
	printersMachineIDIndex   = "machine_id-index"
)

type printerItem struct {
	ID        string `dynamodbav:"id"`
	Code      string `dynamodbav:"code"`
	Model     string `dynamodbav:"model,omitempty"`
	MachineID string `dynamodbav:"machine_id"`
	Active    bool   `dynamodbav:"active"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at,omitempty"`
}

// PrinterDynamoRepository persists Printer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: machine_id-index (PK: machine_id)

type PrinterDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPrinterRepository = (*PrinterDynamoRepository)(nil)

func NewPrinterDynamoRepository(ddb *dynamodb.Client) *PrinterDynamoRepository {
	return &PrinterDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRINTERS_TABLE", defaultPrintersTableName),
	}
}

func (r *PrinterDynamoRepository) Create(ctx context.Context, p entities.Printer) (entities.Printer, error) {
	p.CreatedAt = stampCreated(p.CreatedAt)
	av, err := attributevalue.MarshalMap(toPrinterItem(p))
	if err != nil {
		return entities.Printer{}, err
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
		return entities.Printer{}, err
	}
	return p, nil
}

func (r *PrinterDynamoRepository) GetActiveByMachineID(ctx context.Context, machineID string) (entities.Printer, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(printersMachineIDIndex),
		KeyConditionExpression: aws.String("machine_id = :mid"),
		FilterExpression:       aws.String("active = :true"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mid":  &types.AttributeValueMemberS{Value: machineID},
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return entities.Printer{}, err
	}
	if len(out.Items) == 0 {
		return entities.Printer{}, nil
	}

	var it printerItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Printer{}, err
	}
	return fromPrinterItem(it), nil
}

func toPrinterItem(p entities.Printer) printerItem {
	return printerItem{
		ID:        p.ID,
		Code:      p.Code,
		Model:     p.Model,
		MachineID: p.MachineID,
		Active:    p.Active,
		CreatedAt: formatTime(p.CreatedAt),
		UpdatedAt: formatTimePtr(p.UpdatedAt),
	}
}

func fromPrinterItem(it printerItem) entities.Printer {
	return entities.Printer{
		ID:        it.ID,
		Code:      it.Code,
		Model:     it.Model,
		MachineID: it.MachineID,
		Active:    it.Active,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTimePtr(it.UpdatedAt),
	}
}
