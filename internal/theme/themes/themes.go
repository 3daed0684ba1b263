// Package themes registers every built-in theme descriptor.
package themes

import (
	_ "git.home.luguber.info/inful/blogcfg/internal/theme/themes/hextra"
	_ "git.home.luguber.info/inful/blogcfg/internal/theme/themes/hope"
	_ "git.home.luguber.info/inful/blogcfg/internal/theme/themes/relearn"
)
