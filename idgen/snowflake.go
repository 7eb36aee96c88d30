package idgen

import (
	"log"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	once sync.Once
	node *snowflake.Node
)

// Init creates the process-wide node. Calling it at startup surfaces a bad
// node configuration immediately; callers that skip it get the node on first
// use instead.
func Init() {
	once.Do(newNode)
}

func newNode() {
	var err error
	node, err = snowflake.NewNode(1)
	if err != nil {
		log.Fatalf("Failed to init Snowflake: %v", err)
	}
}

// WorkflowID returns a unique id used to correlate the log lines of one
// multi-step workflow run.
func WorkflowID() string {
	once.Do(newNode)
	return node.Generate().String()
}
