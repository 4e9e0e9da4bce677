package governance

import (
	logging "github.com/inconshreveable/log15"

	"github.com/tequdev/xahau-governance-hook-test/lib/common"
)

var log logging.Logger = logging.New("module", "governance")

func init() {
	SetLogging(logging.LvlCrit, common.DefaultLogHandler)
}

func SetLogging(level logging.Lvl, handler logging.Handler) {
	log.SetHandler(logging.LvlFilterHandler(level, handler))
}
