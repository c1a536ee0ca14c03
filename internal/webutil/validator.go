package webutil

import (
	"log"
	"reflect"
	"strings"

	"go_5_sheet_keep/internal/model"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"username":    "ユーザー名",
	"password":    "パスワード",
	"title":       "タイトル",
	"description": "説明",
	"link":        "問題リンク",
	"platform":    "プラットフォーム",
	"status":      "ステータス",
	"difficulty":  "難易度",
	"topic":       "トピック",
	"notes":       "メモ",
}

func init() {
	// バリデータのインスタンスを生成
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// 日本語のロケールとトランスレータを設定
	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	// バリデータに日本語の翻訳を登録
	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// 個別のエラーメッセージを上書き・カスタマイズするヘルパー
	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			fieldName := fe.Field()
			translatedFieldName, ok := fieldNameTranslations[fieldName]
			if !ok {
				// マップにない場合は、元のjsonタグ名をそのまま使う
				translatedFieldName = fieldName
			}
			t, _ := ut.T(tag, translatedFieldName)
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("url", "{0}は有効なURL形式ではありません。")

	// min / max はパラメータ付きのため個別に登録する
	Validator.RegisterTranslation("min", Trans, func(ut ut.Translator) error {
		return ut.Add("min", "{0}は{1}文字以上で入力してください。", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		fieldName := fe.Field()
		translatedFieldName, ok := fieldNameTranslations[fieldName]
		if !ok {
			translatedFieldName = fieldName
		}
		t, _ := ut.T("min", translatedFieldName, fe.Param())
		return t
	})

	Validator.RegisterTranslation("max", Trans, func(ut ut.Translator) error {
		return ut.Add("max", "{0}は{1}文字以下で入力してください。", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		fieldName := fe.Field()
		translatedFieldName, ok := fieldNameTranslations[fieldName]
		if !ok {
			translatedFieldName = fieldName
		}
		t, _ := ut.T("max", translatedFieldName, fe.Param())
		return t
	})
}

// NewValidationError はバリデーションエラーの先頭をクライアント向けの AppError に変換します。
func NewValidationError(errs validator.ValidationErrors) *model.AppError {
	firstErr := errs[0]
	return model.NewAppError(
		"VALIDATION_ERROR",
		firstErr.Translate(Trans),
		firstErr.Field(), // エラーが発生したフィールド (jsonタグ名)
		model.ErrInvalidInput,
	)
}
