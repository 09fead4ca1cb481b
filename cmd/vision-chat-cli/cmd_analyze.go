package main

import (
	"strings"

	"github.com/spf13/cobra"

	"jan-server/services/vision-chat-api/internal/interfaces/httpserver/requests"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Text and image analysis",
}

var analyzeTextCmd = &cobra.Command{
	Use:   "text [text]",
	Short: "Analyze text",
	Long:  `Run a sentiment, summary or comprehensive analysis of the given text.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyzeText,
}

var analyzeImageCmd = &cobra.Command{
	Use:   "image [file]",
	Short: "Analyze an image file",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyzeImage,
}

func init() {
	analyzeCmd.AddCommand(analyzeTextCmd)
	analyzeCmd.AddCommand(analyzeImageCmd)

	analyzeTextCmd.Flags().StringP("type", "t", "comprehensive", "Analysis type: sentiment, summary or comprehensive")
}

func runAnalyzeText(cmd *cobra.Command, args []string) error {
	analysisType, _ := cmd.Flags().GetString("type")
	result, err := newClient(cmd).AnalyzeText(cmd.Context(), requests.TextAnalysisRequest{
		Text:         strings.Join(args, " "),
		AnalysisType: analysisType,
	})
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), result)
}

func runAnalyzeImage(cmd *cobra.Command, args []string) error {
	result, err := newClient(cmd).AnalyzeImageFile(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), result)
}
