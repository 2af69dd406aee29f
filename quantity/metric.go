package quantity

// Metric (SI) prefix factors, powers of 10. Unit tables express their
// conversion factors through these so the constants read like the SI table:
// 5 km = 5 * Kilo meters.
const (
	Quecto = 1e-30
	Ronto  = 1e-27
	Yocto  = 1e-24
	Zepto  = 1e-21
	Atto   = 1e-18
	Femto  = 1e-15
	Pico   = 1e-12
	Nano   = 1e-9
	Micro  = 1e-6
	Milli  = 1e-3
	Centi  = 1e-2
	Deci   = 1e-1
	Deca   = 1e1
	Hecto  = 1e2
	Kilo   = 1e3
	Mega   = 1e6
	Giga   = 1e9
	Tera   = 1e12
	Peta   = 1e15
	Exa    = 1e18
	Zetta  = 1e21
	Yotta  = 1e24
	Ronna  = 1e27
	Quetta = 1e30
)

// Binary (IEC) prefix factors, powers of 1024, used by information units.
const (
	Kibi = 1024.0
	Mebi = Kibi * 1024
	Gibi = Mebi * 1024
	Tebi = Gibi * 1024
	Pebi = Tebi * 1024
	Exbi = Pebi * 1024
	Zebi = Exbi * 1024
	Yobi = Zebi * 1024
)
