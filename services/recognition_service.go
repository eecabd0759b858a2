package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// RecognitionService turns a food photo into candidate food names via AWS
// Rekognition label detection. The names feed the regular nutrition resolver.
type RecognitionService struct {
	client *rekognition.Client
}

func NewRecognitionService() (*RecognitionService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, fmt.Errorf("AWS config load failed: %w", err)
	}
	return &RecognitionService{client: rekognition.NewFromConfig(cfg)}, nil
}

// RecognizeFoodLabels returns up to five label names for a base64 data-URI
// encoded image, highest confidence first.
func (r *RecognitionService) RecognizeFoodLabels(base64Img string) ([]string, error) {
	comma := strings.IndexByte(base64Img, ',')
	if !strings.HasPrefix(base64Img, "data:image") || comma < 0 {
		return nil, errors.New("invalid image data URI")
	}
	data, err := base64.StdEncoding.DecodeString(base64Img[comma+1:])
	if err != nil {
		return nil, fmt.Errorf("invalid base64 image data: %w", err)
	}

	out, err := r.client.DetectLabels(context.TODO(), &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(5),
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return nil, fmt.Errorf("label detection failed: %w", err)
	}

	var labels []string
	for _, label := range out.Labels {
		labels = append(labels, *label.Name)
	}
	return labels, nil
}
