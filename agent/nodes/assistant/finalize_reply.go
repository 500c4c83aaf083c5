package assistantnode

import (
	"fmt"
	"strings"

	contractx "github.com/natthawee/shopflow/agent/contract"
)

func FinalizeReply(in *GraphState) (GraphOutput, error) {
	if in == nil {
		return GraphOutput{}, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	reply := strings.TrimSpace(strings.Join(in.Reply, "\n\n"))
	if reply == "" {
		return GraphOutput{}, fmt.Errorf("%w: no reply was produced", contractx.ErrValidation)
	}
	return GraphOutput{Reply: reply}, nil
}
