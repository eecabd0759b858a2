package utils

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/Kombo16/food-health-app/models"
)

var (
	sesOnce   sync.Once
	sesClient *ses.Client
	sesErr    error
)

func loadSESClient() (*ses.Client, error) {
	sesOnce.Do(func() {
		cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
			awsconfig.WithRegion(os.Getenv("AWS_REGION")))
		if err != nil {
			sesErr = fmt.Errorf("AWS config load failed: %w", err)
			return
		}
		sesClient = ses.NewFromConfig(cfg)
	})
	return sesClient, sesErr
}

// generic SES sender
func sendEmail(to string, subject string, body string) error {
	client, err := loadSESClient()
	if err != nil {
		return err
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err = client.SendEmail(context.TODO(), input)
	if err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

// SendAssessmentEmail mails a plain-text summary of a lifestyle assessment.
// Requires SES_EMAIL to be set; callers treat failures as non-fatal.
func SendAssessmentEmail(to string, assessment *models.LifestyleDiseaseAssessment) error {
	if os.Getenv("SES_EMAIL") == "" {
		return fmt.Errorf("SES_EMAIL not configured")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall lifestyle disease risk score: %.1f\n\n", assessment.OverallRiskScore))
	for _, risk := range assessment.DiseaseRisks {
		sb.WriteString(fmt.Sprintf("%s: %.1f%% (%s risk)\n", risk.DiseaseName, risk.RiskPercentage, risk.RiskLevel))
		if len(risk.ContributingFactors) > 0 {
			sb.WriteString("  Contributing factors: " + strings.Join(risk.ContributingFactors, ", ") + "\n")
		}
	}
	if len(assessment.InterventionPriority) > 0 {
		sb.WriteString("\nIntervention priorities:\n")
		for i, p := range assessment.InterventionPriority {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, p))
		}
	}

	return sendEmail(to, "Your Lifestyle Disease Risk Assessment", sb.String())
}
