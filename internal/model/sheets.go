package model

// Sheet names. One table per named sheet; schema evolution may append
// columns but must not rename or reorder the ones consumed by key.
const (
	SheetOverview      = "overview"
	SheetAccommodation = "accommodation_candidates"
	SheetActivities    = "activity_candidates"
	SheetMovies        = "movies"
	SheetEvents        = "events"
	SheetHistory       = "biff_2024"
)

// Column names consumed by key. The planner's sheets carry Korean headers;
// these constants are the single place the spellings live.
const (
	ColKey   = "key"
	ColValue = "value"

	ColAccName  = "숙소명"
	ColActName  = "활동명"
	ColLocation = "위치"
	ColEstCost  = "예상 비용"
	ColPros     = "장점"
	ColLink     = "예약링크"
	ColStatus   = "상태"
	ColDuration = "소요시간"
	ColMemo     = "메모"

	ColTitle       = "영화 제목"
	ColDirector    = "감독"
	ColCountry     = "국가"
	ColRuntime     = "러닝타임"
	ColFormat      = "포맷"
	ColSynopsis    = "시놉시스"
	ColShowDate    = "상영일자"
	ColShowTime    = "상영시간"
	ColVenue       = "상영관"
	ColBookingCode = "예매코드"
	ColBooked      = "예매 여부"

	ColPlatform   = "플랫폼"
	ColOffer      = "지원내역"
	ColOpenDate   = "모집 시작일"
	ColCloseDate  = "모집 마감일"
	ColResultDate = "발표일"
	ColWebPage    = "웹페이지"

	ColPlaceName     = "상호"
	ColVisitDate     = "방문일자"
	ColVisitTime     = "방문시간"
	ColBookingTime   = "예약시간"
	ColCategory      = "종류"
	ColAddress       = "주소"
	ColOrderedMenu   = "주문메뉴"
	ColSupportedCost = "지원비용"
	ColExtraCost     = "추가비용"
	ColNotes         = "비고"
	ColLatitude      = "위도"
	ColLongitude     = "경도"
)

// Headers per sheet, in sheet order.
var (
	OverviewHeaders = []string{ColKey, ColValue}

	AccommodationHeaders = []string{ColAccName, ColLocation, ColEstCost, ColPros, ColLink, ColStatus}

	ActivityHeaders = []string{ColActName, ColLocation, ColEstCost, ColDuration, ColMemo}

	MovieHeaders = []string{
		ColTitle, ColDirector, ColCountry, ColRuntime, ColFormat, ColSynopsis,
		ColShowDate, ColShowTime, ColVenue, ColBookingCode, ColBooked,
	}

	EventHeaders = []string{ColPlatform, ColOffer, ColOpenDate, ColCloseDate, ColResultDate, ColStatus, ColWebPage}

	HistoryHeaders = []string{
		ColPlaceName, ColVisitDate, ColVisitTime, ColBookingTime, ColCategory,
		ColAddress, ColOrderedMenu, ColSupportedCost, ColExtraCost, ColNotes,
		ColLatitude, ColLongitude,
	}
)
