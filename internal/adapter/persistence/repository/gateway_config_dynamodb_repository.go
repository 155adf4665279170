package repository

import (
	"context"

	"agreste_marketplace/internal/domain/entities"
	"agreste_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultGatewayConfigsTableName = "gateway_configs"

type gatewayConfigItem struct {
	StoreID        string `dynamodbav:"store_id"`
	APIKey         string `dynamodbav:"api_key"`
	Environment    string `dynamodbav:"environment"`
	WebhookURL     string `dynamodbav:"webhook_url,omitempty"`
	SoftDescriptor string `dynamodbav:"soft_descriptor,omitempty"`
	IsFacilitador  bool   `dynamodbav:"is_facilitador"`

	SubMerchantTaxID       string `dynamodbav:"sub_merchant_tax_id,omitempty"`
	SubMerchantName        string `dynamodbav:"sub_merchant_name,omitempty"`
	SubMerchantReferenceID string `dynamodbav:"sub_merchant_reference_id,omitempty"`
	SubMerchantMCC         string `dynamodbav:"sub_merchant_mcc,omitempty"`

	PixEnabled    bool `dynamodbav:"pix_enabled"`
	BoletoEnabled bool `dynamodbav:"boleto_enabled"`
	CartaoEnabled bool `dynamodbav:"cartao_enabled"`
}

// GatewayConfigDynamoRepository persists GatewayConfig records in DynamoDB.
//
// Table requirements:
//   - PK: store_id (string)
//
// Saves overwrite: a merchant re-submitting its configuration replaces the
// previous record wholesale.

type GatewayConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IGatewayConfigRepository = (*GatewayConfigDynamoRepository)(nil)

func NewGatewayConfigDynamoRepository(ddb *dynamodb.Client) *GatewayConfigDynamoRepository {
	return &GatewayConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("GATEWAY_CONFIGS_TABLE", defaultGatewayConfigsTableName),
	}
}

func (r *GatewayConfigDynamoRepository) Save(ctx context.Context, cfg entities.GatewayConfig) (entities.GatewayConfig, error) {
	av, err := attributevalue.MarshalMap(toGatewayConfigItem(cfg))
	if err != nil {
		return entities.GatewayConfig{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.GatewayConfig{}, err
	}
	return cfg, nil
}

func (r *GatewayConfigDynamoRepository) GetByStoreID(ctx context.Context, storeID string) (entities.GatewayConfig, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"store_id": &types.AttributeValueMemberS{Value: storeID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.GatewayConfig{}, err
	}
	if len(out.Item) == 0 {
		return entities.GatewayConfig{}, nil
	}

	var it gatewayConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.GatewayConfig{}, err
	}
	return fromGatewayConfigItem(it), nil
}

func toGatewayConfigItem(cfg entities.GatewayConfig) gatewayConfigItem {
	return gatewayConfigItem{
		StoreID:                cfg.StoreID,
		APIKey:                 cfg.APIKey,
		Environment:            string(cfg.Environment),
		WebhookURL:             cfg.WebhookURL,
		SoftDescriptor:         cfg.SoftDescriptor,
		IsFacilitador:          cfg.IsFacilitador,
		SubMerchantTaxID:       cfg.SubMerchant.TaxID,
		SubMerchantName:        cfg.SubMerchant.Name,
		SubMerchantReferenceID: cfg.SubMerchant.ReferenceID,
		SubMerchantMCC:         cfg.SubMerchant.MCC,
		PixEnabled:             cfg.EnabledMethods.Pix,
		BoletoEnabled:          cfg.EnabledMethods.Boleto,
		CartaoEnabled:          cfg.EnabledMethods.Cartao,
	}
}

func fromGatewayConfigItem(it gatewayConfigItem) entities.GatewayConfig {
	return entities.GatewayConfig{
		StoreID:        it.StoreID,
		APIKey:         it.APIKey,
		Environment:    entities.Environment(it.Environment),
		WebhookURL:     it.WebhookURL,
		SoftDescriptor: it.SoftDescriptor,
		IsFacilitador:  it.IsFacilitador,
		SubMerchant: entities.SubMerchant{
			TaxID:       it.SubMerchantTaxID,
			Name:        it.SubMerchantName,
			ReferenceID: it.SubMerchantReferenceID,
			MCC:         it.SubMerchantMCC,
		},
		EnabledMethods: entities.EnabledMethods{
			Pix:    it.PixEnabled,
			Boleto: it.BoletoEnabled,
			Cartao: it.CartaoEnabled,
		},
	}
}
