package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconGrid    = "\U000F0572" // 󰕲
	IconBrush   = "\U000F00E3" // 󰃣
	IconWarning = "\uf071"     // 
)
