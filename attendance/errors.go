package attendance

// Kind mengklasifikasikan penolakan presensi. Semuanya non-fatal:
// pengguna boleh mencoba lagi setelah prasyaratnya terpenuhi.
type Kind string

const (
	KindMemberNotFound     Kind = "MEMBER_NOT_FOUND"
	KindInvalidRequest     Kind = "INVALID_REQUEST"
	KindOutsideWindow      Kind = "OUTSIDE_WINDOW"
	KindAlreadyCheckedIn   Kind = "ALREADY_CHECKED_IN"
	KindNoOpenCheckIn      Kind = "NO_OPEN_CHECK_IN"
	KindMinimumHoursNotMet Kind = "MINIMUM_HOURS_NOT_MET"
)

// Kelas styling untuk UI (dikirim apa adanya ke frontend Tailwind).
const (
	ClassGreen  = "bg-green-100 text-green-700"
	ClassYellow = "bg-yellow-100 text-yellow-700"
	ClassRed    = "bg-red-100 text-red-700"
)

// Rejection adalah hasil evaluasi kebijakan yang ditampilkan verbatim ke
// pengguna. Kegagalan storage tidak memakai tipe ini dan merambat sebagai
// error infrastruktur biasa.
type Rejection struct {
	Kind        Kind
	Message     string
	StatusClass string
}

func (r *Rejection) Error() string { return r.Message }
