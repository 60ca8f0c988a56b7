package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/rs/zerolog/log"

	"hanziclash/internal/content"
	"hanziclash/internal/models"
)

// ReportService emails guardians a progress summary of their linked
// players via Amazon SES. Installs without SES configured get a disabled
// service that skips sending instead of failing.
type ReportService struct {
	client    *sesv2.Client
	fromEmail string
	fromName  string
	enabled   bool
}

// NewReportService creates a new report service. An empty fromEmail
// yields a disabled service.
func NewReportService(awsRegion, fromEmail, fromName string) (*ReportService, error) {
	if fromEmail == "" {
		log.Info().Msg("report emails disabled: SES_FROM_EMAIL not configured")
		return &ReportService{enabled: false}, nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Info().Str("from", fromEmail).Str("region", awsRegion).Msg("report emails enabled")
	return &ReportService{
		client:    sesv2.NewFromConfig(cfg),
		fromEmail: fromEmail,
		fromName:  fromName,
		enabled:   true,
	}, nil
}

// IsEnabled reports whether emails will actually be sent.
func (s *ReportService) IsEnabled() bool {
	return s.enabled
}

// SendProgressReport emails a guardian the current standing of their
// linked players.
func (s *ReportService) SendProgressReport(ctx context.Context, guardian *models.Guardian, players []models.Player) error {
	if !s.enabled {
		log.Info().Str("to", guardian.Email).Msg("skipping progress report, emails disabled")
		return nil
	}
	if len(players) == 0 {
		return fmt.Errorf("guardian %d has no linked players", guardian.ID)
	}

	subject := "汉字大作战 Progress Report"
	htmlBody, textBody := buildReportBodies(guardian, players)
	return s.sendEmail(ctx, guardian.Email, subject, htmlBody, textBody)
}

func buildReportBodies(guardian *models.Guardian, players []models.Player) (html, text string) {
	greeting := guardian.Name
	if greeting == "" {
		greeting = guardian.Email
	}

	var rows, lines strings.Builder
	for _, p := range players {
		world, err := content.WorldForLevel(p.MaxUnlockedLevel)
		worldName := ""
		if err == nil {
			worldName = world.Name
		}
		stars := 0
		for _, s := range p.StarsByLevel {
			stars += s
		}

		rows.WriteString(fmt.Sprintf(
			"<tr><td>%s %s</td><td>%d</td><td>%s</td><td>%d</td><td>%d</td><td>%d</td></tr>\n",
			p.Avatar, p.Name, p.MaxUnlockedLevel, worldName, stars, p.TotalScore, len(p.MistakeWordIDs)))
		lines.WriteString(fmt.Sprintf(
			"- %s: level %d (%s), %d stars, %d points, %d words to review\n",
			p.Name, p.MaxUnlockedLevel, worldName, stars, p.TotalScore, len(p.MistakeWordIDs)))
	}

	html = fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: #e24a4a; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
		.content { background-color: #f9f9f9; padding: 30px; border-radius: 0 0 5px 5px; }
		table { width: 100%%; border-collapse: collapse; }
		th, td { padding: 8px; border-bottom: 1px solid #ddd; text-align: left; }
		.footer { text-align: center; margin-top: 20px; font-size: 12px; color: #666; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header">
			<h1>Progress Report</h1>
		</div>
		<div class="content">
			<p>Hi %s,</p>
			<p>Here is how your players are doing in 汉字大作战:</p>
			<table>
				<tr><th>Player</th><th>Level</th><th>World</th><th>Stars</th><th>Score</th><th>Review</th></tr>
				%s
			</table>
			<p>Words in the review column are waiting in the mistake book; a quick practice session clears them.</p>
		</div>
		<div class="footer">
			<p>This is an automated email. Please do not reply.</p>
		</div>
	</div>
</body>
</html>
`, greeting, rows.String())

	text = fmt.Sprintf(`Hi %s,

Here is how your players are doing in 汉字大作战:

%s
Words marked for review are waiting in the mistake book; a quick practice session clears them.

---
This is an automated email. Please do not reply.
`, greeting, lines.String())

	return html, text
}

// sendEmail sends an email using Amazon SES.
func (s *ReportService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	log.Info().Str("to", toEmail).Str("subject", subject).Msg("email sent")
	return nil
}
