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
	defaultPrintRulesTableName  = "print_rules"
	printRulesMachineLabelIndex = "machine_label-index"
)

type printRuleItem struct {
	ID           string `dynamodbav:"id"`
	MachineID    string `dynamodbav:"machine_id"`
	LabelID      string `dynamodbav:"label_id"`
	MachineLabel string `dynamodbav:"machine_label"`
	Authorized   bool   `dynamodbav:"authorized"`
	PrintLimit   int    `dynamodbav:"print_limit"`
	Reason       string `dynamodbav:"reason,omitempty"`
	Active       bool   `dynamodbav:"active"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at,omitempty"`
}

// PrintRuleDynamoRepository persists PrintRule entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: machine_label-index (PK: machine_label)
//
// machine_label is the composite "<machine_id>#<label_id>" key maintained on
// every write so the allow-list lookup is a single query.

type PrintRuleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPrintRuleRepository = (*PrintRuleDynamoRepository)(nil)

func NewPrintRuleDynamoRepository(ddb *dynamodb.Client) *PrintRuleDynamoRepository {
	return &PrintRuleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRINT_RULES_TABLE", defaultPrintRulesTableName),
	}
}

func (r *PrintRuleDynamoRepository) Create(ctx context.Context, rule entities.PrintRule) (entities.PrintRule, error) {
	rule.CreatedAt = stampCreated(rule.CreatedAt)
	av, err := attributevalue.MarshalMap(toPrintRuleItem(rule))
	if err != nil {
		return entities.PrintRule{}, err
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
		return entities.PrintRule{}, err
	}
	return rule, nil
}

func (r *PrintRuleDynamoRepository) GetActiveByMachineAndLabel(ctx context.Context, machineID, labelID string) (entities.PrintRule, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(printRulesMachineLabelIndex),
		KeyConditionExpression: aws.String("machine_label = :ml"),
		FilterExpression:       aws.String("active = :true"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ml":   &types.AttributeValueMemberS{Value: machineLabelKey(machineID, labelID)},
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return entities.PrintRule{}, err
	}
	if len(out.Items) == 0 {
		return entities.PrintRule{}, nil
	}

	var it printRuleItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PrintRule{}, err
	}
	return fromPrintRuleItem(it), nil
}

func toPrintRuleItem(rule entities.PrintRule) printRuleItem {
	return printRuleItem{
		ID:           rule.ID,
		MachineID:    rule.MachineID,
		LabelID:      rule.LabelID,
		MachineLabel: machineLabelKey(rule.MachineID, rule.LabelID),
		Authorized:   rule.Authorized,
		PrintLimit:   rule.PrintLimit,
		Reason:       rule.Reason,
		Active:       rule.Active,
		CreatedAt:    formatTime(rule.CreatedAt),
		UpdatedAt:    formatTimePtr(rule.UpdatedAt),
	}
}

func fromPrintRuleItem(it printRuleItem) entities.PrintRule {
	return entities.PrintRule{
		ID:         it.ID,
		MachineID:  it.MachineID,
		LabelID:    it.LabelID,
		Authorized: it.Authorized,
		PrintLimit: it.PrintLimit,
		Reason:     it.Reason,
		Active:     it.Active,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTimePtr(it.UpdatedAt),
	}
}
