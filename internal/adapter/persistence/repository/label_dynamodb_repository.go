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

const defaultLabelsTableName = "labels"

type labelItem struct {
	ID          string `dynamodbav:"id"`
	Code        string `dynamodbav:"code"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	ContentZPL  string `dynamodbav:"content_zpl"`
	WidthMM     int    `dynamodbav:"width_mm,omitempty"`
	HeightMM    int    `dynamodbav:"height_mm,omitempty"`
	Category    string `dynamodbav:"category,omitempty"`
	Version     string `dynamodbav:"version,omitempty"`
	Active      bool   `dynamodbav:"active"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at,omitempty"`
}

// LabelDynamoRepository persists Label entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: code-index (PK: code)

type LabelDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILabelRepository = (*LabelDynamoRepository)(nil)

func NewLabelDynamoRepository(ddb *dynamodb.Client) *LabelDynamoRepository {
	return &LabelDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LABELS_TABLE", defaultLabelsTableName),
	}
}

func (r *LabelDynamoRepository) Create(ctx context.Context, l entities.Label) (entities.Label, error) {
	l.CreatedAt = stampCreated(l.CreatedAt)
	av, err := attributevalue.MarshalMap(toLabelItem(l))
	if err != nil {
		return entities.Label{}, err
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
		return entities.Label{}, err
	}
	return l, nil
}

func (r *LabelDynamoRepository) GetByID(ctx context.Context, id string) (entities.Label, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Label{}, err
	}
	if len(out.Item) == 0 {
		return entities.Label{}, nil
	}

	var it labelItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Label{}, err
	}
	return fromLabelItem(it), nil
}

func toLabelItem(l entities.Label) labelItem {
	return labelItem{
		ID:          l.ID,
		Code:        l.Code,
		Name:        l.Name,
		Description: l.Description,
		ContentZPL:  l.ContentZPL,
		WidthMM:     l.WidthMM,
		HeightMM:    l.HeightMM,
		Category:    l.Category,
		Version:     l.Version,
		Active:      l.Active,
		CreatedAt:   formatTime(l.CreatedAt),
		UpdatedAt:   formatTimePtr(l.UpdatedAt),
	}
}

func fromLabelItem(it labelItem) entities.Label {
	return entities.Label{
		ID:          it.ID,
		Code:        it.Code,
		Name:        it.Name,
		Description: it.Description,
		ContentZPL:  it.ContentZPL,
		WidthMM:     it.WidthMM,
		HeightMM:    it.HeightMM,
		Category:    it.Category,
		Version:     it.Version,
		Active:      it.Active,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTimePtr(it.UpdatedAt),
	}
}
