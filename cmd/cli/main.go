package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
)

var (
	serverURL   string
	noAutoStart bool
	rootCmd     = &cobra.Command{
		Use:   "vidgrab",
		Short: "Vidgrab CLI - Fetch video metadata and drive yt-dlp downloads",
		Long:  `A command-line interface for the vidgrab server, which wraps yt-dlp for metadata fetches and downloads.`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "Server URL")
	rootCmd.PersistentFlags().BoolVar(&noAutoStart, "no-auto-start", false, "Don't auto-start server if not running")

	downloadCmd.Flags().StringArray("arg", nil, "yt-dlp argument, repeatable (passed through verbatim)")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(watchCmd)
}

// ensureServer checks if server is running and starts it if needed (unless --no-auto-start)
func ensureServer() {
	if noAutoStart {
		return
	}
	if err := ensureServerRunning(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
}

var infoCmd = &cobra.Command{
	Use:   "info [url]",
	Short: "Fetch metadata for a video URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ensureServer()

		payload := map[string]string{"url": args[0]}
		data, _ := json.Marshal(payload)
		resp, err := http.Post(serverURL+"/api/v1/videos/info", "application/json", bytes.NewBuffer(data))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode != http.StatusOK {
			fmt.Fprintf(os.Stderr, "Error: %s\n", string(body))
			os.Exit(1)
		}

		var info struct {
			ID          string  `json:"id"`
			Title       string  `json:"title"`
			Duration    float64 `json:"duration"`
			Thumbnail   string  `json:"thumbnail"`
			Resolutions []struct {
				Label    string `json:"label"`
				FormatID string `json:"format_id"`
			} `json:"resolutions"`
			Formats []json.RawMessage `json:"formats"`
		}
		json.Unmarshal(body, &info)

		fmt.Printf("Title:    %s\n", info.Title)
		fmt.Printf("ID:       %s\n", info.ID)
		fmt.Printf("Duration: %.0fs\n", info.Duration)
		fmt.Printf("Formats:  %d\n", len(info.Formats))
		if len(info.Resolutions) > 0 {
			labels := make([]string, 0, len(info.Resolutions))
			for _, r := range info.Resolutions {
				labels = append(labels, fmt.Sprintf("%s (%s)", r.Label, r.FormatID))
			}
			fmt.Printf("Available: %s\n", strings.Join(labels, ", "))
		}
	},
}

var downloadCmd = &cobra.Command{
	Use:   "download [url]",
	Short: "Start a download",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ensureServer()

		ytdlpArgs, _ := cmd.Flags().GetStringArray("arg")
		payload := map[string]interface{}{
			"url":  args[0],
			"args": ytdlpArgs,
		}

		data, _ := json.Marshal(payload)
		resp, err := http.Post(serverURL+"/api/v1/videos/download", "application/json", bytes.NewBuffer(data))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode != http.StatusAccepted {
			fmt.Fprintf(os.Stderr, "Error: %s\n", string(body))
			os.Exit(1)
		}

		var result map[string]interface{}
		json.Unmarshal(body, &result)
		fmt.Printf("Download started!\n")
		fmt.Printf("ID: %s\n", result["id"])
		fmt.Printf("Status: %s\n", result["status"])
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all downloads",
	Run: func(cmd *cobra.Command, args []string) {
		ensureServer()

		resp, err := http.Get(serverURL + "/api/v1/downloads")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		var downloads []downloadSummary
		json.Unmarshal(body, &downloads)

		printDownloadTable(os.Stdout, downloads)
	},
}

// downloadSummary holds the job fields the list table displays.
type downloadSummary struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

func printDownloadTable(out io.Writer, downloads []downloadSummary) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tURL\tSTATUS\tCREATED")
	for _, d := range downloads {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			truncate(d.ID, 8),
			truncate(d.URL, 40),
			d.Status,
			d.CreatedAt)
	}
	w.Flush()
}

var getCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get download details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ensureServer()
		resp, err := http.Get(serverURL + "/api/v1/downloads/" + args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode != http.StatusOK {
			fmt.Fprintf(os.Stderr, "Error: %s\n", string(body))
			os.Exit(1)
		}

		var download map[string]interface{}
		json.Unmarshal(body, &download)

		fmt.Printf("Download Details:\n")
		fmt.Printf("  ID:      %s\n", download["id"])
		fmt.Printf("  URL:     %s\n", download["url"])
		fmt.Printf("  Status:  %s\n", download["status"])
		fmt.Printf("  Created: %s\n", download["created_at"])
		if download["progress"] != nil {
			progress := download["progress"].(map[string]interface{})
			fmt.Printf("  Progress: %.1f%% at %s ETA %s\n",
				progress["percent"], progress["speed"], progress["eta"])
		}
		if download["error_message"] != nil {
			fmt.Printf("  Error:   %s\n", download["error_message"])
		}
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream live download events",
	Run: func(cmd *cobra.Command, args []string) {
		ensureServer()

		wsURL := strings.Replace(serverURL, "http", "ws", 1) + "/api/v1/events"
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer conn.Close()

		for {
			var event struct {
				Type    string  `json:"type"`
				JobID   string  `json:"job_id"`
				Percent float64 `json:"percent"`
				Speed   string  `json:"speed"`
				ETA     string  `json:"eta"`
				Line    string  `json:"line"`
				Message string  `json:"message"`
			}
			if err := conn.ReadJSON(&event); err != nil {
				return
			}

			switch event.Type {
			case "progress":
				fmt.Printf("[%s] %.1f%% at %s ETA %s\n",
					truncate(event.JobID, 8), event.Percent, event.Speed, event.ETA)
			case "diagnostic":
				fmt.Printf("[%s] stderr: %s\n", truncate(event.JobID, 8), event.Line)
			case "completed":
				fmt.Printf("[%s] completed\n", truncate(event.JobID, 8))
			case "failed":
				fmt.Printf("[%s] failed: %s\n", truncate(event.JobID, 8), event.Message)
			}
		}
	},
}

// truncate shortens a string for table display
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
