package resultio

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// WriteSolution writes the cover size on the first line and a
// comma-separated list of 1-based vertex ids on the second. cover holds
// 0-based ids; order within the list is not significant.
func WriteSolution(path string, cover []int) error {
	ids := make([]string, len(cover))
	for i, v := range cover {
		ids[i] = strconv.Itoa(v + 1)
	}

	body := fmt.Sprintf("%d\n%s\n", len(cover), strings.Join(ids, ","))
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("resultio: writing solution file: %w", err)
	}
	return nil
}
