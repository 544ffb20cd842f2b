package main

import (
	"fmt"
	"time"

	"github.com/joeydtaylor/filament/pkg/builder"
)

func main() {
	fmt.Println("Creating a logger and a push client...")

	logger := builder.NewLogger(builder.LoggerWithLevel(builder.InfoLevel))

	push := builder.NewPushClient(
		builder.PushClientWithBaseURL("https://collect.example.com"),
		builder.PushClientWithAPIKey("key-from-env"),
		builder.PushClientWithLogger(logger),
	)

	fmt.Println("Creating the writer...")

	writer := builder.NewLogWriter(
		builder.LogWriterWithRepository("acme-prod"),
		builder.LogWriterWithPushClient(push),
		builder.LogWriterWithFlushInterval(5*time.Second),
		builder.LogWriterWithLogger(logger),
	)
	defer writer.Stop()

	fmt.Println("Logging a session with a trace and a generation...")

	session, err := builder.NewSession(writer, builder.EmitterConfig{Name: "support-chat"})
	if err != nil {
		fmt.Printf("Error creating session: %v\n", err)
		return
	}

	trace, err := session.NewTrace(builder.EmitterConfig{Name: "answer-question"})
	if err != nil {
		fmt.Printf("Error creating trace: %v\n", err)
		return
	}
	trace.SetInput("How do I reset my password?")

	generation, err := trace.NewGeneration(builder.EmitterConfig{Name: "draft-answer"})
	if err != nil {
		fmt.Printf("Error creating generation: %v\n", err)
		return
	}
	generation.SetModel("gpt-4o")
	generation.SetModelParameters(map[string]any{"temperature": 0.2})
	generation.AddMessage("user", "How do I reset my password?")
	generation.SetResult(map[string]any{"text": "Open settings and choose Reset Password."})
	generation.End()

	trace.SetOutput("Open settings and choose Reset Password.")
	trace.End()

	session.Feedback(1.0, "resolved on first answer")
	session.End()

	fmt.Println("Flushing...")
	writer.Flush()
	fmt.Printf("Records still queued: %d\n", writer.QueueDepth())
}
