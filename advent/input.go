package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// readInput loads puzzle input from src, which is a file name, "-" (or
// empty) for stdin, or an s3://bucket/key URL.
func readInput(ctx context.Context, src string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	switch {
	case src == "" || src == "-":
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("error reading stdin: %s", err)
		}
		return string(b), nil
	case strings.HasPrefix(src, "s3://"):
		bucket, key, err := parseS3URL(src)
		if err != nil {
			return "", err
		}
		sess, err := session.NewSessionWithOptions(session.Options{
			SharedConfigState: session.SharedConfigEnable,
		})
		if err != nil {
			return "", fmt.Errorf("cannot create AWS session: %s", err)
		}
		return fetchS3(ctx, s3.New(sess), bucket, key)
	}
	b, err := os.ReadFile(src)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func parseS3URL(s string) (bucket, key string, err error) {
	u, err := url.Parse(s)
	if err != nil {
		return "", "", err
	}
	if u.Scheme != "s3" || u.Host == "" || strings.TrimPrefix(u.Path, "/") == "" {
		return "", "", fmt.Errorf("bad S3 URL %q (want s3://bucket/key)", s)
	}
	return u.Host, strings.TrimPrefix(u.Path, "/"), nil
}

func fetchS3(ctx context.Context, client s3iface.S3API, bucket, key string) (string, error) {
	resp, err := client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("error fetching s3://%s/%s: %s", bucket, key, err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading s3://%s/%s: %s", bucket, key, err)
	}
	return string(b), nil
}

// splitLines splits input into newline-terminated lines. The final
// newline is optional.
func splitLines(input string) []string {
	input = strings.TrimSuffix(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// parseAll parses each line of input, stopping at the first bad line. It
// also returns the lines so that later errors can quote them.
func parseAll[R any](cfg *config, input string, parse func(i int, line string) (R, error)) ([]R, []string, error) {
	lines := splitLines(input)
	recs := make([]R, len(lines))
	for i, line := range lines {
		rec, err := parse(i, line)
		if err != nil {
			return nil, nil, err
		}
		cfg.trace(rec)
		recs[i] = rec
	}
	return recs, lines, nil
}
