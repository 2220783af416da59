package emulator

import (
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("bpfvm.emulator")
