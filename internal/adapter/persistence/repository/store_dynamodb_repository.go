package repository

import (
	"context"
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
	defaultStoresTableName = "stores"
	storesSlugIndex        = "slug-index"
)

type storeItem struct {
	ID         string `dynamodbav:"id"`
	Slug       string `dynamodbav:"slug"`
	Name       string `dynamodbav:"name"`
	Owner      string `dynamodbav:"owner,omitempty"`
	Email      string `dynamodbav:"email,omitempty"`
	Plan       string `dynamodbav:"plan,omitempty"`
	PlanStatus string `dynamodbav:"plan_status,omitempty"`
	Status     string `dynamodbav:"status"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`

	PrimaryColor string `dynamodbav:"primary_color,omitempty"`
	BannerURL    string `dynamodbav:"banner_url,omitempty"`
	LogoURL      string `dynamodbav:"logo_url,omitempty"`
	Description  string `dynamodbav:"description,omitempty"`
}

// StoreDynamoRepository persists Store entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: slug-index (PK: slug)

type StoreDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStoreRepository = (*StoreDynamoRepository)(nil)

func NewStoreDynamoRepository(ddb *dynamodb.Client) *StoreDynamoRepository {
	return &StoreDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STORES_TABLE", defaultStoresTableName),
	}
}

func (r *StoreDynamoRepository) Create(ctx context.Context, s entities.Store) (entities.Store, error) {
	av, err := attributevalue.MarshalMap(toStoreItem(s))
	if err != nil {
		return entities.Store{}, err
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
		return entities.Store{}, err
	}
	return s, nil
}

func (r *StoreDynamoRepository) GetByID(ctx context.Context, id string) (entities.Store, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Store{}, err
	}
	if len(out.Item) == 0 {
		return entities.Store{}, nil
	}

	var it storeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Store{}, err
	}
	return fromStoreItem(it), nil
}

func (r *StoreDynamoRepository) GetBySlug(ctx context.Context, slug string) (entities.Store, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(storesSlugIndex),
		KeyConditionExpression: aws.String("slug = :slug"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":slug": &types.AttributeValueMemberS{Value: slug},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Store{}, err
	}
	if len(out.Items) == 0 {
		return entities.Store{}, nil
	}

	var it storeItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Store{}, err
	}
	return fromStoreItem(it), nil
}

func (r *StoreDynamoRepository) List(ctx context.Context) ([]entities.Store, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	stores := make([]entities.Store, 0, len(out.Items))
	for _, raw := range out.Items {
		var it storeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		stores = append(stores, fromStoreItem(it))
	}
	return stores, nil
}

func (r *StoreDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.StoreStatus) (entities.Store, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *StoreDynamoRepository) UpdateAppearance(ctx context.Context, id string, a entities.Appearance) (entities.Store, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #primary_color = :primary_color, #banner_url = :banner_url, #logo_url = :logo_url, #description = :description, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":primary_color": &types.AttributeValueMemberS{Value: a.PrimaryColor},
			":banner_url":    &types.AttributeValueMemberS{Value: a.BannerURL},
			":logo_url":      &types.AttributeValueMemberS{Value: a.LogoURL},
			":description":   &types.AttributeValueMemberS{Value: a.Description},
			":updated_at":    &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#primary_color": "primary_color",
			"#banner_url":    "banner_url",
			"#logo_url":      "logo_url",
			"#description":   "description",
			"#updated_at":    "updated_at",
		}
		return expr, vals, names
	})
}

func (r *StoreDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Store, error) {
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
			return entities.Store{}, nil
		}
		return entities.Store{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Store{}, nil
	}
	var it storeItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Store{}, err
	}
	return fromStoreItem(it), nil
}

func toStoreItem(s entities.Store) storeItem {
	return storeItem{
		ID:           s.ID,
		Slug:         s.Slug,
		Name:         s.Name,
		Owner:        s.Owner,
		Email:        s.Email,
		Plan:         s.Plan,
		PlanStatus:   s.PlanStatus,
		Status:       string(s.Status),
		CreatedAt:    s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    s.UpdatedAt.UTC().Format(time.RFC3339Nano),
		PrimaryColor: s.Appearance.PrimaryColor,
		BannerURL:    s.Appearance.BannerURL,
		LogoURL:      s.Appearance.LogoURL,
		Description:  s.Appearance.Description,
	}
}

func fromStoreItem(it storeItem) entities.Store {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Store{
		ID:         it.ID,
		Slug:       it.Slug,
		Name:       it.Name,
		Owner:      it.Owner,
		Email:      it.Email,
		Plan:       it.Plan,
		PlanStatus: it.PlanStatus,
		Status:     entities.StoreStatus(it.Status),
		Appearance: entities.Appearance{
			PrimaryColor: it.PrimaryColor,
			BannerURL:    it.BannerURL,
			LogoURL:      it.LogoURL,
			Description:  it.Description,
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
