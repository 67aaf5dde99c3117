package identifier

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// New produces a record identifier of the form prefix_<ts><rnd>: the current
// unix milliseconds in base 36 followed by the first segment of a v4 UUID.
// Two calls separated by any measurable interval cannot collide on the time
// component, and the random segment covers calls within the same millisecond.
func New(prefix string) string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	rnd := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%s_%s%s", prefix, ts, rnd)
}
