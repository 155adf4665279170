package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"agreste_marketplace/internal/domain/entities"
	"agreste_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersChargeIDIndex    = "charge_id-index"
	ordersStoreIDIndex     = "store_id-index"
)

type orderItem struct {
	ID             string `dynamodbav:"id"`
	StoreID        string `dynamodbav:"store_id"`
	ReferenceID    string `dynamodbav:"reference_id,omitempty"`
	ChargeID       string `dynamodbav:"charge_id,omitempty"`
	Method         string `dynamodbav:"method"`
	AmountCentavos int64  `dynamodbav:"amount_centavos"`
	Status         string `dynamodbav:"status"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
	RawResponse    string `dynamodbav:"raw_response,omitempty"`
}

// OrderDynamoRepository persists checkout orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: charge_id-index (PK: charge_id)
//   - GSI: store_id-index (PK: store_id)

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) GetByChargeID(ctx context.Context, chargeID string) (entities.Order, error) {
	if chargeID == "" {
		return entities.Order{}, nil
	}

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersChargeIDIndex),
		KeyConditionExpression: aws.String("charge_id = :charge_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":charge_id": &types.AttributeValueMemberS{Value: chargeID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListByStoreID(ctx context.Context, storeID string) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersStoreIDIndex),
		KeyConditionExpression: aws.String("store_id = :store_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":store_id": &types.AttributeValueMemberS{Value: storeID},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	return orders, nil
}

// UpdateStatus also records the charge id: PIX orders are created before the
// provider assigns a charge, so the first notification backfills it.
func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, chargeID string, status entities.ChargeStatus) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #charge_id = :charge_id, #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":charge_id":  &types.AttributeValueMemberS{Value: chargeID},
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#charge_id":  "charge_id",
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:             o.ID,
		StoreID:        o.StoreID,
		ReferenceID:    o.ReferenceID,
		ChargeID:       o.ChargeID,
		Method:         string(o.Method),
		AmountCentavos: o.AmountCentavos,
		Status:         string(o.Status),
		CreatedAt:      o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      o.UpdatedAt.UTC().Format(time.RFC3339Nano),
		RawResponse:    string(o.RawResponse),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	var raw json.RawMessage
	if it.RawResponse != "" {
		raw = json.RawMessage(it.RawResponse)
	}
	return entities.Order{
		ID:             it.ID,
		StoreID:        it.StoreID,
		ReferenceID:    it.ReferenceID,
		ChargeID:       it.ChargeID,
		Method:         entities.PaymentMethod(it.Method),
		AmountCentavos: it.AmountCentavos,
		Status:         entities.ChargeStatus(it.Status),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
		RawResponse:    raw,
	}
}
