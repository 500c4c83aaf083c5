package assistantnode

import (
	"fmt"

	commandx "github.com/natthawee/shopflow/agent/command"
	contractx "github.com/natthawee/shopflow/agent/contract"
)

// InterpretCommand parses the user line against the command grammar. A parse
// validation error is not fatal; it is kept on the graph state and rendered
// as a usage message by the execute node.
func InterpretCommand(in *GraphState) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	cmd, err := commandx.Parse(in.Text)
	in.Cmd = cmd
	in.CmdErr = err
	return in, nil
}
