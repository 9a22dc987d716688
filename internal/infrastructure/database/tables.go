package database

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// tableSpec declares one table and its global secondary indexes. All key
// attributes are strings.
type tableSpec struct {
	envVar  string
	defName string
	indexes []indexSpec
}

type indexSpec struct {
	name     string
	hashKey  string
	rangeKey string
}

// Schema for the reference data store plus the print-record ledger. The
// machine_id-index on print_records carries requested_at as its sort key so
// daily-quota sums can range over a single partition.
var tableSpecs = []tableSpec{
	{"MACHINES_TABLE", "machines", []indexSpec{
		{name: "code-index", hashKey: "code"},
		{name: "hostname-index", hashKey: "hostname"},
		{name: "mac-index", hashKey: "mac_address"},
	}},
	{"PRINTERS_TABLE", "printers", []indexSpec{
		{name: "machine_id-index", hashKey: "machine_id"},
	}},
	{"EMPLOYEES_TABLE", "employees", []indexSpec{
		{name: "number-index", hashKey: "number"},
	}},
	{"LABELS_TABLE", "labels", []indexSpec{
		{name: "code-index", hashKey: "code"},
	}},
	{"LOTS_TABLE", "lots", []indexSpec{
		{name: "number-index", hashKey: "number"},
	}},
	{"LOT_ASSIGNMENTS_TABLE", "lot_assignments", []indexSpec{
		{name: "machine_id-index", hashKey: "machine_id"},
	}},
	{"PRINT_RULES_TABLE", "print_rules", []indexSpec{
		{name: "machine_label-index", hashKey: "machine_label"},
	}},
	{"PRINT_RECORDS_TABLE", "print_records", []indexSpec{
		{name: "machine_id-index", hashKey: "machine_id", rangeKey: "requested_at"},
		{name: "lot_id-index", hashKey: "lot_id"},
		{name: "machine_label-index", hashKey: "machine_label"},
	}},
}

// ProvisionEnabled reports whether tables should be created at startup. Off
// unless PROVISION_TABLES is set.
func ProvisionEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("PROVISION_TABLES"))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// EnsureTables creates any missing tables, including their indexes, and
// waits for them to become active. Intended for local development against a
// DynamoDB container; production tables are provisioned out of band.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client) error {
	for _, spec := range tableSpecs {
		name := getenvDefault(spec.envVar, spec.defName)
		exists, err := tableExists(ctx, ddb, name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		log.Printf("[database] creating table %s", name)
		if _, err := ddb.CreateTable(ctx, buildCreateTableInput(name, spec.indexes)); err != nil {
			return err
		}

		waiter := dynamodb.NewTableExistsWaiter(ddb)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)}, 2*time.Minute); err != nil {
			return err
		}
	}
	return nil
}

func tableExists(ctx context.Context, ddb *dynamodb.Client, name string) (bool, error) {
	_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)})
	if err != nil {
		var rnf *types.ResourceNotFoundException
		if errors.As(err, &rnf) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func buildCreateTableInput(name string, indexes []indexSpec) *dynamodb.CreateTableInput {
	attrs := map[string]struct{}{"id": {}}
	for _, idx := range indexes {
		attrs[idx.hashKey] = struct{}{}
		if idx.rangeKey != "" {
			attrs[idx.rangeKey] = struct{}{}
		}
	}

	defs := make([]types.AttributeDefinition, 0, len(attrs))
	for attr := range attrs {
		defs = append(defs, types.AttributeDefinition{
			AttributeName: aws.String(attr),
			AttributeType: types.ScalarAttributeTypeS,
		})
	}

	gsis := make([]types.GlobalSecondaryIndex, 0, len(indexes))
	for _, idx := range indexes {
		schema := []types.KeySchemaElement{
			{AttributeName: aws.String(idx.hashKey), KeyType: types.KeyTypeHash},
		}
		if idx.rangeKey != "" {
			schema = append(schema, types.KeySchemaElement{
				AttributeName: aws.String(idx.rangeKey),
				KeyType:       types.KeyTypeRange,
			})
		}
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName:  aws.String(idx.name),
			KeySchema:  schema,
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	input := &dynamodb.CreateTableInput{
		TableName:            aws.String(name),
		BillingMode:          types.BillingModePayPerRequest,
		AttributeDefinitions: defs,
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
	}
	if len(gsis) > 0 {
		input.GlobalSecondaryIndexes = gsis
	}
	return input
}
