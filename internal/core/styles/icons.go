package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconImage  = "\U000F02E9"
	IconLock   = "\uf023"
	IconCursor = "▸"
)
