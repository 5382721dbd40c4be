package errors

import "net/http"

var (
	ErrPropertyNotFound = New(
		"PROPERTY_NOT_FOUND",
		"Property not found",
		http.StatusNotFound,
	).WithDetails(map[string]interface{}{"message_ar": "العقار غير موجود"})

	ErrCityNotFound = New(
		"CITY_NOT_FOUND",
		"City not found",
		http.StatusNotFound,
	).WithDetails(map[string]interface{}{"message_ar": "المدينة غير موجودة"})

	ErrAreaNotFound = New(
		"AREA_NOT_FOUND",
		"Area not found",
		http.StatusNotFound,
	).WithDetails(map[string]interface{}{"message_ar": "المنطقة غير موجودة"})

	ErrPropertyCodeRequired = New(
		"PROPERTY_CODE_REQUIRED",
		"Property code is required",
		http.StatusBadRequest,
	)

	ErrPropertyCodeConflict = New(
		"PROPERTY_CODE_CONFLICT",
		"Property with this code already exists",
		http.StatusConflict,
	).WithDetails(map[string]interface{}{"message_ar": "كود العقار مستخدم بالفعل"})

	ErrPropertyCodeImmutable = New(
		"PROPERTY_CODE_IMMUTABLE",
		"Property code cannot be changed",
		http.StatusConflict,
	).WithDetails(map[string]interface{}{"message_ar": "لا يمكن تغيير كود العقار"})

	ErrNameConflict = New(
		"NAME_CONFLICT",
		"Record with this name already exists",
		http.StatusConflict,
	).WithDetails(map[string]interface{}{"message_ar": "الاسم مستخدم بالفعل"})

	ErrInvalidFilter = New(
		"INVALID_FILTER",
		"Invalid filter value",
		http.StatusBadRequest,
	)

	ErrInvalidID = New(
		"INVALID_ID",
		"Invalid identifier",
		http.StatusBadRequest,
	)

	ErrValidation = New(
		"VALIDATION_ERROR",
		"Request validation failed",
		http.StatusBadRequest,
	).WithDetails(map[string]interface{}{"message_ar": "يرجى تعبئة جميع الحقول المطلوبة"})

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	).WithDetails(map[string]interface{}{"message_ar": "حدث خطأ أثناء الاتصال بقاعدة البيانات"})

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Missing or invalid API key",
		http.StatusUnauthorized,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
