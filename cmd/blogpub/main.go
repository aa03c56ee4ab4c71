// Command blogpub publishes an HTML file to a Blogger blog, creating a new
// draft or updating an existing one matched by title.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eringen/blogpub"
)

// version is set at build time via ldflags.
var version = "dev"

var flags struct {
	title        string
	sourceFile   string
	blogID       string
	clientID     string
	clientSecret string
	refreshToken string
	labels       string
	debug        bool
}

var rootCmd = &cobra.Command{
	Use:           "blogpub",
	Short:         "Publish HTML content to Blogger",
	Long:          "Publish an HTML file to a Blogger blog. Local images are inlined as data URIs. An existing draft with the same title is updated; scheduled and live posts are left untouched.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flags.title, "title", "", "post title")
	f.StringVar(&flags.sourceFile, "source-file", "", "source HTML file")
	f.StringVar(&flags.blogID, "blog-id", "", "Blogger blog ID")
	f.StringVar(&flags.clientID, "client-id", "", "OAuth client ID")
	f.StringVar(&flags.clientSecret, "client-secret", "", "OAuth client secret")
	f.StringVar(&flags.refreshToken, "refresh-token", "", "OAuth refresh token")
	f.StringVar(&flags.labels, "labels", "", "comma-separated labels")
	f.BoolVar(&flags.debug, "debug", false, "enable debug logging")

	for _, name := range []string{"title", "source-file", "blog-id", "client-id", "client-secret", "refresh-token"} {
		_ = rootCmd.MarkFlagRequired(name)
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the blogpub version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("blogpub %s\n", version)
		},
	})
}

func run(cmd *cobra.Command, args []string) error {
	log, err := newLogger(flags.debug)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	content, err := os.ReadFile(flags.sourceFile)
	if err != nil {
		return fmt.Errorf("read source file: %w", err)
	}

	ctx := cmd.Context()
	posts, err := blogpub.NewPostsService(ctx, blogpub.Credentials{
		ClientID:     flags.clientID,
		ClientSecret: flags.clientSecret,
		RefreshToken: flags.refreshToken,
	})
	if err != nil {
		return err
	}

	pub := blogpub.NewPublisher(posts, blogpub.WithLogger(log))
	post, err := pub.Publish(ctx, flags.blogID, blogpub.PublishRequest{
		Title:      flags.title,
		Content:    string(content),
		Labels:     blogpub.ParseLabels(flags.labels),
		SourcePath: flags.sourceFile,
	})
	if err != nil {
		return fmt.Errorf("publish post: %w", err)
	}

	fmt.Printf("%s (%s)\n", post.URL, post.Status)
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	return cfg.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
