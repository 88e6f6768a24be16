package s3client

import (
	"fmt"
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const presignExpiry = 15 * time.Minute

type Client struct {
	bucket string
	svc    *s3.S3
}

func NewClient(region, bucket string) *Client {
	sess := session.Must(session.NewSession(&aws.Config{
		Region: aws.String(region),
	}))
	return &Client{
		bucket: bucket,
		svc:    s3.New(sess),
	}
}

// GetPresignedUrl returns an upload url valid for a short window and the
// stable media url the object will be served from.
func (c *Client) GetPresignedUrl(prefix, userId, mediaExtension string) (string, string) {
	key := fmt.Sprintf("%s/%s/%s.%s", prefix, userId, uuid.NewString(), mediaExtension)

	req, _ := c.svc.PutObjectRequest(&s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})

	uploadUrl, err := req.Presign(presignExpiry)
	if err != nil {
		logger.Error("Failed presigning upload url", zap.Error(err))
		return "", ""
	}

	mediaUrl := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", c.bucket, key)
	return uploadUrl, mediaUrl
}
