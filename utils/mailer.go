package utils

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var sesClient *ses.Client

func init() {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("AWS config load failed: %v", err)
	}
	sesClient = ses.NewFromConfig(cfg)
}

func sendEmail(to string, subject string, body string) error {
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

	_, err := sesClient.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

func SendMFAEmail(to string, code string) error {
	subject := "Race Fuel Planner sign-in code"
	body := fmt.Sprintf(
		"Your sign-in verification code is: %s\n\n"+
			"Enter it in the planner to finish logging in. "+
			"The code expires with your login attempt.", code)
	return sendEmail(to, subject, body)
}

func SendResetEmail(to string, token string) error {
	subject := "Reset your Race Fuel Planner password"
	body := fmt.Sprintf(
		"Your password reset code is: %s\n\n"+
			"It is valid for 15 minutes. If you did not ask to reset your "+
			"planner password, you can ignore this email.", token)
	return sendEmail(to, subject, body)
}
