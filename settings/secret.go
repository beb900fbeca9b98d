package settings

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
)

// Secret holds credentials for external collaborators. The engine itself
// never sees these.
type Secret struct {
	AlphaVantageKey string `json:"alpha_vantage_api_key"`
	DatabaseURL     string `json:"database_url"`
}

// LoadSecret loads a secret containing sensitive information from a local
// json file or from an amazon secrets manager entry.
func LoadSecret(name string, cloud bool) (Secret, error) {
	var secret Secret
	if cloud {
		raw, err := getSecret(name)
		if err != nil {
			return secret, err
		}
		if err := json.Unmarshal([]byte(raw), &secret); err != nil {
			return secret, fmt.Errorf("failed to parse secret %v: %w", name, err)
		}
		return secret, nil
	}
	secretFile, err := os.Open(name)
	if err != nil {
		return secret, fmt.Errorf("failed to open secret file: %w", err)
	}
	defer secretFile.Close()
	if err := json.NewDecoder(secretFile).Decode(&secret); err != nil {
		return secret, fmt.Errorf("failed to parse secret file %v: %w", name, err)
	}
	return secret, nil
}

func getSecret(secretName string) (string, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-west-1"
	}
	svc := secretsmanager.New(session.Must(session.NewSession()), aws.NewConfig().WithRegion(region))
	input := &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretName),
		VersionStage: aws.String("AWSCURRENT"),
	}
	result, err := svc.GetSecretValue(input)
	if err != nil {
		return "", fmt.Errorf("failed to fetch secret %v: %w", secretName, err)
	}
	if result.SecretString == nil {
		return "", fmt.Errorf("secret %v has no string value", secretName)
	}
	return *result.SecretString, nil
}
