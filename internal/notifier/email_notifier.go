package notifier

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/rahalrsh/point-of-sale/configs"
)

// SendOrderReceipt emails the shop manager a copy of the order receipt. A
// no-op when no manager address is configured.
func SendOrderReceipt(orderID uint, amount float64, orderNote string) error {
	cfg := config.LoadEmailConfig()

	if cfg.ManagerEmail == "" {
		return nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")),
	)
	if err != nil {

		log.Printf("Failed to load AWS SDK config for order %d receipt: %v", orderID, err)
		return fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	client := ses.NewFromConfig(awsCfg)

	if cfg.SenderEmail == "" {
		return fmt.Errorf("sender email address is not configured in environment variables")
	}

	subject := fmt.Sprintf("Order #%d placed", orderID)

	amountStr := strconv.FormatFloat(amount, 'f', 2, 64)

	bodyHTML := fmt.Sprintf(`
        <html>
        <body>
            <p>Order #%d has been placed.</p>
            <p><strong>Receipt:</strong></p>
            <ul>
                <li>Order ID: %d</li>
                <li>Amount tendered: %s</li>
                <li>Note: %s</li>
            </ul>
        </body>
        </html>`, orderID, orderID, amountStr, orderNote)

	bodyText := fmt.Sprintf(
		"Order #%d has been placed.\n\nReceipt:\nOrder ID: %d\nAmount tendered: %s\nNote: %s\n",
		orderID, orderID, amountStr, orderNote)

	input := &ses.SendEmailInput{
		Source: aws.String(cfg.SenderEmail),
		Destination: &types.Destination{
			ToAddresses: []string{cfg.ManagerEmail},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Charset: aws.String("UTF-8"),
				Data:    aws.String(subject),
			},
			Body: &types.Body{
				Html: &types.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(bodyHTML),
				},
				Text: &types.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(bodyText),
				},
			},
		},
	}

	_, err = client.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("Failed to send receipt email for order %d: %v", orderID, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("Receipt email sent for order %d", orderID)
	return nil
}
